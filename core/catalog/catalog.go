package catalog

import (
	"strings"
	"sync"

	"trade-ledger/core/ledger"
)

// Catalog is a read-mostly index of cards by name.
// Reloads swap the whole index; cards handed out earlier stay valid.
type Catalog struct {
	mu     sync.RWMutex
	byName map[string]*ledger.Card
	folded map[string]*ledger.Card
}

// New creates a catalog holding cards.
func New(cards []*ledger.Card) *Catalog {
	c := &Catalog{}
	c.Replace(cards)
	return c
}

// Replace swaps the catalog contents. Later duplicates of a name win.
func (c *Catalog) Replace(cards []*ledger.Card) {
	byName := make(map[string]*ledger.Card, len(cards))
	folded := make(map[string]*ledger.Card, len(cards))
	for _, card := range cards {
		if card == nil {
			continue
		}
		byName[card.Name()] = card
		folded[strings.ToLower(card.Name())] = card
	}

	c.mu.Lock()
	c.byName = byName
	c.folded = folded
	c.mu.Unlock()
}

// Lookup finds a card by exact name, falling back to a case-insensitive match.
func (c *Catalog) Lookup(name string) (*ledger.Card, bool) {
	name = strings.TrimSpace(name)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if card, ok := c.byName[name]; ok {
		return card, true
	}
	card, ok := c.folded[strings.ToLower(name)]
	return card, ok
}

// Len returns the number of cards.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byName)
}
