// Package catalog exposes the card catalog over HTTP.
//
// # HTTP Endpoints
//
//   - GET /catalog : Number of loaded cards.
//   - GET /catalog/:name : Card metadata (exact or case-insensitive name).
//   - POST /catalog/reload : Reload from the configured source.
package catalog
