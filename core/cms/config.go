package cms

// Config holds configuration for the remote content store.
type Config struct {
	// SpaceID identifies the space holding the content.
	SpaceID string `mapstructure:"space_id" default:""`
	// EnvironmentID identifies the environment inside the space.
	EnvironmentID string `mapstructure:"environment_id" default:"master"`
	// ManagementToken is the access credential for the management API.
	ManagementToken string `mapstructure:"management_token" default:""`
	// BaseURL is the management API endpoint.
	BaseURL string `mapstructure:"base_url" default:"https://api.contentful.com"`
	// UploadURL is the upload API endpoint used for asset bytes.
	UploadURL string `mapstructure:"upload_url" default:"https://upload.contentful.com"`
	// Locale is the single locale tag every field value is wrapped in.
	Locale string `mapstructure:"locale" default:"en-US"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
