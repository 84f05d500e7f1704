// Package tradelist implements the gateway side of the card trade-list ledger.
//
// It turns structured commands into ledger operations: card names are resolved
// through a Catalog, the owner's ledger is taken from the ledger.Store, and each
// requested line is applied on its own so that one bad line never aborts a batch.
//
// # Commands
//
//   - View: render a tradelist; an owner without cards gets an empty listing.
//   - Add / Remove: apply "<quantity> <card name> [<printing>]" lines.
//   - SetVisibility: toggle the public flag.
//   - Contains: wildcard-aware membership check.
//
// # HTTP Endpoints
//
//   - GET /tradelist/:owner : Render (optionally ?viewer=).
//   - POST /tradelist/:owner/add : Add lines.
//   - POST /tradelist/:owner/remove : Remove lines.
//   - PUT /tradelist/:owner/visibility : Set visibility.
//   - GET /tradelist/:owner/contains : Check ?name= and optional ?printing=.
package tradelist
