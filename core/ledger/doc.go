// Package ledger implements the in-memory card trade-list ledger.
//
// It tracks, per owner, how many copies of each catalog card the owner holds,
// optionally pinned to a specific printing, together with a public/private flag.
//
// # Identity
//
// A Card is an immutable copy of the catalog fields the ledger needs (name,
// printings, types). An Identity pairs a Card with an optional chosen printing.
// Two matching rules exist:
//
//   - Equal: strict, every identity field must agree.
//   - Matches: wildcard, an absent printing on either side matches any printing.
//
// Add and Remove use exact printing comparison so that distinct printings a user
// tracks separately are never collapsed. Contains uses the wildcard rule.
//
// # Concurrency
//
// Each Ledger carries its own RWMutex. The Store shards owners across a fixed
// number of buckets so that lookups for different owners do not contend, and no
// ledger operation ever holds a shard lock.
//
// # Usage
//
//	store := ledger.NewStore(0)
//	card, _ := ledger.NewCard("Izzet Charm", []string{"RNA", "ARC"}, []string{"Instant"})
//	id, _ := ledger.WithPrinting(card, "RNA")
//	entry, _ := ledger.NewEntry(id, 3)
//	_ = store.GetOrCreate("user-1").Add(entry)
package ledger
