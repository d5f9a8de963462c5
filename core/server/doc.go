// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// only defines the configuration structure for server settings such as the
// listen port, the API key protecting the API, and the upload body limit.
//
// It is primarily used by the core/config package to embed server settings.
package server
