// Package database handles the optional catalog database connection.
//
// It wraps GORM to configure MySQL or SQLite connections from the application's
// configuration. The ledger itself is never persisted; the database only backs the
// read-only catalog source.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let the catalog verify that its `cards`
// table carries the expected columns before loading it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	missing, err := database.MissingColumns(db, "cards", "name", "printings", "types")
package database
