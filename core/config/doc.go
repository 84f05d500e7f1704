// Package config provides configuration management for the trade ledger service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Default values come from the `default` struct tags of each
// section and are registered with Viper by reflection.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port and API key
//   - Ledger: shard count of the in-memory ledger store
//   - Catalog: card catalog source (file, storage, database) and its location
//   - Storage: S3/MinIO credentials and bucket, used by the storage catalog source
//   - Database: MySQL/SQLite connection, used by the database catalog source
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
