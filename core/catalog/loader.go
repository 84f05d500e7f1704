package catalog

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Loader fills a Catalog from a Source.
// Concurrent reloads share a single load of the source.
type Loader struct {
	source  Source
	catalog *Catalog
	logger  *zap.Logger
	sf      singleflight.Group
}

// NewLoader creates a loader writing into catalog.
func NewLoader(source Source, catalog *Catalog, logger *zap.Logger) *Loader {
	return &Loader{source: source, catalog: catalog, logger: logger}
}

// Catalog returns the catalog the loader writes into.
func (l *Loader) Catalog() *Catalog {
	return l.catalog
}

// Reload loads the source and swaps the catalog contents.
// On failure the previous contents are kept.
func (l *Loader) Reload(ctx context.Context) (int, error) {
	n, err, shared := l.sf.Do("reload", func() (interface{}, error) {
		start := time.Now()
		cards, err := l.source.Load(ctx)
		if err != nil {
			return 0, fmt.Errorf("catalog source %s: %w", l.source.Name(), err)
		}
		l.catalog.Replace(cards)
		l.logger.Info("Catalog loaded",
			zap.String("source", l.source.Name()),
			zap.Int("cards", len(cards)),
			zap.Duration("took", time.Since(start)))
		return len(cards), nil
	})
	if err != nil {
		l.logger.Error("Catalog reload failed", zap.Error(err))
		return 0, err
	}
	if shared {
		l.logger.Debug("Catalog reload shared with concurrent caller")
	}
	return n.(int), nil
}
