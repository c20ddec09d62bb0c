// Package config provides configuration management for content-sync.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional .env file and command-line flags. Defaults are declared next to
// each section with `default:"..."` struct tags and registered by reflection.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Contentful: space, environment, management token, locale, API endpoints
//   - Source: content root, document file name, content-type directory globs
//   - Sync: page size, default time-zone offset, dry-run and delete-all switches
//   - Storage: optional S3/MinIO bucket used to stage asset uploads
//   - Database: optional MySQL database holding the sync journal
//   - Log: logging level and format
//   - Server: HTTP trigger port and API key
//
// Precedence is explicit flag, then environment, then .env, then default.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".", config.Bind(cmd.Flags(), "space", "contentful.space_id"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Contentful.SpaceID)
package config
