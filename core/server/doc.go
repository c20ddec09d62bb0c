// Package server holds the HTTP server configuration.
//
// While the serve command handles the server startup, this package defines the
// configuration structure for server settings.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key and how long a sync
// triggered over HTTP may run.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the serve command to set up the Fiber application.
package server
