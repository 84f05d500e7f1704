package catalog

import (
	"context"
	"fmt"
	"os"
	"strings"

	"trade-ledger/core/database"
	"trade-ledger/core/ledger"
	"trade-ledger/core/storage"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// Source loads the full set of catalog cards.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]*ledger.Card, error)
}

// FileSource reads an AtomicCards JSON file from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return SourceFile }

func (s FileSource) Load(_ context.Context) ([]*ledger.Card, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// StorageSource reads an AtomicCards JSON object from object storage.
type StorageSource struct {
	Client storage.Client
	Bucket string
	Object string
}

func (s StorageSource) Name() string { return SourceStorage }

func (s StorageSource) Load(ctx context.Context) ([]*ledger.Card, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog object %s/%s: %w", s.Bucket, s.Object, err)
	}
	defer obj.Close()
	return Decode(obj)
}

// CardRecord is a catalog row. Printings and types are comma-separated.
type CardRecord struct {
	Name      string `gorm:"column:name;primaryKey"`
	Printings string `gorm:"column:printings"`
	Types     string `gorm:"column:types"`
}

// DatabaseSource reads catalog rows from a table.
type DatabaseSource struct {
	DB    *gorm.DB
	Table string
}

func (s DatabaseSource) Name() string { return SourceDatabase }

func (s DatabaseSource) table() string {
	if s.Table == "" {
		return "cards"
	}
	return s.Table
}

func (s DatabaseSource) Load(ctx context.Context) ([]*ledger.Card, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("catalog database is not connected")
	}
	missing, err := database.MissingColumns(s.DB, s.table(), "name", "printings", "types")
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("catalog table %s is missing columns: %s", s.table(), strings.Join(missing, ", "))
	}

	var records []CardRecord
	if err := s.DB.WithContext(ctx).Table(s.table()).Order("name").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to read catalog table: %w", err)
	}

	cards := make([]*ledger.Card, 0, len(records))
	for _, rec := range records {
		card, err := ledger.NewCard(rec.Name, splitList(rec.Printings), splitList(rec.Types))
		if err != nil {
			continue
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}
