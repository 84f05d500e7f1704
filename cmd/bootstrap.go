package cmd

import (
	"context"
	"fmt"

	"trade-ledger/core/catalog"
	"trade-ledger/core/config"
	"trade-ledger/core/database"
	"trade-ledger/core/storage"

	"go.uber.org/zap"
)

// newCatalogSource builds the catalog source selected by the configuration.
func newCatalogSource(cfg *config.Config, logg *zap.Logger) (catalog.Source, error) {
	if !cfg.Catalog.IsValidSource() {
		return nil, fmt.Errorf("unknown catalog source: %q", cfg.Catalog.Source)
	}

	switch cfg.Catalog.Source {
	case catalog.SourceStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return catalog.StorageSource{Client: client, Bucket: cfg.Storage.Bucket, Object: cfg.Catalog.Object}, nil
	case catalog.SourceDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		logg.Info("Connected to catalog database", zap.String("driver", cfg.Database.Driver))
		return catalog.DatabaseSource{DB: db, Table: cfg.Catalog.Table}, nil
	default:
		return catalog.FileSource{Path: cfg.Catalog.Path}, nil
	}
}

// loadCatalog builds the configured source and performs the initial load.
// The loader is returned even when the load fails so callers may retry later.
func loadCatalog(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*catalog.Loader, error) {
	src, err := newCatalogSource(cfg, logg)
	if err != nil {
		return nil, err
	}
	loader := catalog.NewLoader(src, catalog.New(nil), logg)
	if _, err := loader.Reload(ctx); err != nil {
		return loader, err
	}
	return loader, nil
}
