package ledger

import "errors"

// Sentinel errors returned by the ledger core.
var (
	// ErrInvalidCard is returned for malformed catalog records or zero identities.
	ErrInvalidCard = errors.New("ledger: invalid card")
	// ErrUnknownPrinting is returned when a printing is not listed for the card.
	ErrUnknownPrinting = errors.New("ledger: unknown printing")
	// ErrInvalidQuantity is returned for negative or overflowing quantities.
	ErrInvalidQuantity = errors.New("ledger: invalid quantity")
)
