// Package server holds the development HTTP server configuration.
//
// The defaults reproduce the classic fips behaviour: bind localhost:8000 with
// address reuse and serve the current working directory. core/config embeds
// Config under the "server" key, so SERVER_PORT=9000 moves the server.
package server
