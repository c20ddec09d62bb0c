package config

import (
	"errors"
	"reflect"
	"strings"

	"content-sync/core/cms"
	"content-sync/core/database"
	"content-sync/core/logger"
	"content-sync/core/reconcile"
	"content-sync/core/server"
	"content-sync/core/source"
	"content-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Contentful holds the remote store connection settings.
	Contentful cms.Config `mapstructure:"contentful"`
	// Source holds the local content tree settings.
	Source source.Config `mapstructure:"source"`
	// Sync holds reconciliation behaviour (page size, date offset, modes).
	Sync reconcile.Config `mapstructure:"sync"`
	// Storage holds configuration for the optional asset staging bucket.
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the optional sync journal database.
	Database database.Config `mapstructure:"database"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Server holds configuration for the HTTP trigger server.
	Server server.Config `mapstructure:"server"`
}

// FlagBinding ties a command-line flag to a configuration key.
// A flag only wins over the environment when it was set explicitly.
type FlagBinding struct {
	Key  string
	Flag *pflag.Flag
}

// Bind is a shorthand for building a FlagBinding from a flag set.
func Bind(flags *pflag.FlagSet, name, key string) FlagBinding {
	return FlagBinding{Key: key, Flag: flags.Lookup(name)}
}

// LoadConfig loads configuration from environment variables, a .env file and
// any bound command-line flags.
func LoadConfig(path string, bindings ...FlagBinding) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. CI)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. CONTENTFUL_SPACE_ID -> contentful.space_id)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, b := range bindings {
		if b.Flag == nil {
			continue
		}
		if err := v.BindPFlag(b.Key, b.Flag); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings every sync run needs.
func (c *Config) Validate() error {
	var errs []error
	if c.Contentful.SpaceID == "" {
		errs = append(errs, errors.New("contentful.space_id is required (CONTENTFUL_SPACE_ID or --space)"))
	}
	if c.Contentful.EnvironmentID == "" {
		errs = append(errs, errors.New("contentful.environment_id is required (CONTENTFUL_ENVIRONMENT_ID or --environment)"))
	}
	if c.Contentful.ManagementToken == "" {
		errs = append(errs, errors.New("contentful.management_token is required (CONTENTFUL_MANAGEMENT_TOKEN or --token)"))
	}
	if c.Source.Root == "" {
		errs = append(errs, errors.New("source.root is required (SOURCE_ROOT or --source)"))
	}
	return errors.Join(errs...)
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
