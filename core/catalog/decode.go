package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"trade-ledger/core/ledger"
)

// atomicCards mirrors the top level of an AtomicCards JSON dump.
// Each name maps to the faces of the card; only the first face is used.
type atomicCards struct {
	Data map[string][]atomicFace `json:"data"`
}

type atomicFace struct {
	Printings *[]string `json:"printings"`
	Types     *[]string `json:"types"`
}

// Decode reads an AtomicCards JSON document.
// Records without printings or types are skipped, as are records with an empty name.
// Cards are returned sorted by name.
func Decode(r io.Reader) ([]*ledger.Card, error) {
	var raw atomicCards
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	cards := make([]*ledger.Card, 0, len(raw.Data))
	for name, faces := range raw.Data {
		if len(faces) == 0 || faces[0].Printings == nil || faces[0].Types == nil {
			continue
		}
		card, err := ledger.NewCard(name, *faces[0].Printings, *faces[0].Types)
		if err != nil {
			continue
		}
		cards = append(cards, card)
	}

	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Name() < cards[j].Name()
	})
	return cards, nil
}
