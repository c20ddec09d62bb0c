package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Enabled routes asset uploads through the bucket instead of the upload API.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket staged files are written to.
	Bucket string `mapstructure:"bucket" default:"content-sync"`
	// Prefix is prepended to every staged object name.
	Prefix string `mapstructure:"prefix" default:"staging"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// PresignExpirySeconds is how long the remote store may fetch a staged file.
	PresignExpirySeconds int `mapstructure:"presign_expiry_seconds" default:"3600"`
}
