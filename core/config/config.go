package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"trade-ledger/core/catalog"
	"trade-ledger/core/database"
	"trade-ledger/core/ledger"
	"trade-ledger/core/logger"
	"trade-ledger/core/server"
	"trade-ledger/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Ledger holds configuration for the in-memory ledger store.
	Ledger ledger.Config `mapstructure:"ledger"`
	// Catalog selects where card metadata is loaded from.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the catalog database connection.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig reads <path>/.env (when present) into the environment, then builds
// the configuration from environment variables over the struct tag defaults.
// SERVER_PORT maps to server.port, CATALOG_SOURCE to catalog.source, and so on.
func LoadConfig(path string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()
	setDefaults(v, reflect.TypeOf(Config{}), "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if !cfg.Catalog.IsValidSource() {
		return nil, fmt.Errorf("invalid catalog.source %q", cfg.Catalog.Source)
	}
	return &cfg, nil
}

// setDefaults registers every mapstructure key of t with its `default` tag.
// Keys without a default are registered too, otherwise AutomaticEnv cannot
// fill them during Unmarshal.
func setDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for _, field := range reflect.VisibleFields(t) {
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}
		if field.Type.Kind() == reflect.Struct {
			setDefaults(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
