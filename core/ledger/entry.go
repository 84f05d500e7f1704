package ledger

import (
	"fmt"
	"math"
)

// Entry pairs an Identity with a non-negative count.
type Entry struct {
	Identity Identity
	Count    int
}

// NewEntry creates an entry; negative counts are rejected.
func NewEntry(id Identity, count int) (Entry, error) {
	if count < 0 {
		return Entry{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, count)
	}
	return Entry{Identity: id, Count: count}, nil
}

// Increase adds n to the count. The count is left untouched on error.
func (e *Entry) Increase(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, n)
	}
	if e.Count > math.MaxInt-n {
		return fmt.Errorf("%w: %d + %d overflows", ErrInvalidQuantity, e.Count, n)
	}
	e.Count += n
	return nil
}

// Decrease subtracts n from the count, clamping at zero,
// and returns how many copies were actually removed.
func (e *Entry) Decrease(n int) int {
	if n <= 0 {
		return 0
	}
	removed := min(n, e.Count)
	e.Count -= removed
	return removed
}

func (e Entry) String() string {
	return fmt.Sprintf("%d %s", e.Count, e.Identity)
}
