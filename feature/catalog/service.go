package catalog

import (
	"context"

	"trade-ledger/core/catalog"

	"go.uber.org/zap"
)

// CardView is the JSON form of a catalog card.
type CardView struct {
	Name      string   `json:"name"`
	Printings []string `json:"printings"`
	Types     []string `json:"types"`
}

// Service exposes catalog lookups and reloads.
type Service struct {
	loader *catalog.Loader
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(loader *catalog.Loader, logger *zap.Logger) *Service {
	return &Service{loader: loader, logger: logger}
}

// Lookup returns the card named name.
func (s *Service) Lookup(name string) (*CardView, bool) {
	card, ok := s.loader.Catalog().Lookup(name)
	if !ok {
		return nil, false
	}
	return &CardView{
		Name:      card.Name(),
		Printings: card.Printings(),
		Types:     card.Types(),
	}, true
}

// Size returns the number of cards in the catalog.
func (s *Service) Size() int {
	return s.loader.Catalog().Len()
}

// Reload reloads the catalog from its source.
func (s *Service) Reload(ctx context.Context) (int, error) {
	return s.loader.Reload(ctx)
}
