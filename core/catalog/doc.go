// Package catalog provides the card catalog consulted before cards enter a ledger.
//
// The catalog maps card names to immutable ledger.Card values. It is loaded from an
// AtomicCards JSON dump (a top-level "data" object keyed by card name, each entry a
// list of faces carrying "printings" and "types"), either from a local file, from an
// object in S3/MinIO, or from a `cards` table in a SQL database.
//
// # Components
//
//   - Catalog: RWMutex-guarded index with exact and case-insensitive lookup.
//   - Decode: AtomicCards JSON decoder.
//   - Source: FileSource, StorageSource, DatabaseSource.
//   - Loader: single-flight reload of a Source into a Catalog.
//
// The ledger never reaches into the catalog: cards are resolved by the gateway
// and handed to the ledger as values.
package catalog
