package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// SyncTimeoutSeconds bounds a sync triggered over HTTP.
	SyncTimeoutSeconds int `mapstructure:"sync_timeout_seconds" default:"900"`
}

// Protected reports whether requests must carry the API key.
func (c Config) Protected() bool {
	return c.ApiKey != ""
}
