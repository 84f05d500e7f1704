package ledger

import (
	"fmt"
	"slices"
	"strings"
)

// Card is an immutable copy of the catalog fields the ledger relies on.
// A *Card may be shared freely between identities and ledgers.
type Card struct {
	name      string
	printings []string
	types     []string
}

// NewCard builds a Card from catalog fields.
// Printing codes are upper-cased; printings and types are de-duplicated and sorted.
func NewCard(name string, printings, types []string) (*Card, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidCard)
	}
	return &Card{
		name:      name,
		printings: normalizeSet(printings, strings.ToUpper),
		types:     normalizeSet(types, nil),
	}, nil
}

func normalizeSet(values []string, fold func(string) string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if fold != nil {
			v = fold(v)
		}
		out = append(out, v)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Name returns the catalog name of the card.
func (c *Card) Name() string { return c.name }

// Printings returns a copy of the printing codes valid for the card.
func (c *Card) Printings() []string { return slices.Clone(c.printings) }

// Types returns a copy of the card's type tags.
func (c *Card) Types() []string { return slices.Clone(c.types) }

// HasPrinting reports whether code is a known printing of the card.
func (c *Card) HasPrinting(code string) bool {
	_, found := slices.BinarySearch(c.printings, normalizePrinting(code))
	return found
}

// Equal reports whether both cards agree on name, printings and types.
func (c *Card) Equal(other *Card) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.name == other.name &&
		slices.Equal(c.printings, other.printings) &&
		slices.Equal(c.types, other.types)
}

func normalizePrinting(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Identity is a card reference with an optional chosen printing.
// An empty printing means "any printing".
type Identity struct {
	card     *Card
	printing string
}

// NewIdentity returns a printing-agnostic identity for card.
func NewIdentity(card *Card) (Identity, error) {
	if card == nil {
		return Identity{}, ErrInvalidCard
	}
	return Identity{card: card}, nil
}

// WithPrinting returns an identity pinned to printing.
// An empty printing yields a printing-agnostic identity.
func WithPrinting(card *Card, printing string) (Identity, error) {
	if card == nil {
		return Identity{}, ErrInvalidCard
	}
	printing = normalizePrinting(printing)
	if printing == "" {
		return Identity{card: card}, nil
	}
	if !card.HasPrinting(printing) {
		return Identity{}, fmt.Errorf("%w: %s has no printing %q", ErrUnknownPrinting, card.name, printing)
	}
	return Identity{card: card, printing: printing}, nil
}

// Card returns the shared card handle.
func (id Identity) Card() *Card { return id.card }

// Name returns the card name, or "" for the zero identity.
func (id Identity) Name() string {
	if id.card == nil {
		return ""
	}
	return id.card.name
}

// Printing returns the chosen printing, "" when any printing is acceptable.
func (id Identity) Printing() string { return id.printing }

// IsZero reports whether the identity has no card.
func (id Identity) IsZero() bool { return id.card == nil }

// Equal is strict identity equality.
func (id Identity) Equal(other Identity) bool {
	return id.printing == other.printing && id.card.Equal(other.card)
}

// Matches is the wildcard comparison; see the package-level Matches.
func (id Identity) Matches(other Identity) bool {
	return Matches(id, other)
}

// Matches reports whether a and b name the same card and either side accepts
// any printing or both chose the same printing.
func Matches(a, b Identity) bool {
	if a.Name() != b.Name() {
		return false
	}
	return a.printing == "" || b.printing == "" || a.printing == b.printing
}

func (id Identity) String() string {
	if id.printing == "" {
		return id.Name()
	}
	return fmt.Sprintf("%s [%s]", id.Name(), id.printing)
}
