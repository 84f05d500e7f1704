// Package metrics exposes Prometheus counters for the ledger service.
//
// Collectors live on a private registry (no global state) and are served at
// /metrics through Fiber's net/http adaptor.
package metrics
