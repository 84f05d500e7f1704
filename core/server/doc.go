// Package server holds the HTTP server configuration.
//
// While the cmd package handles the server startup, this package defines the
// configuration structure for server settings: the listen port, the API key
// protecting the endpoints and whether the Swagger UI is served.
package server
