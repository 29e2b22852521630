package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"seerr-cleaner/core/httpclient"
	"seerr-cleaner/core/logger"
	"seerr-cleaner/core/reconcile"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Overseerr is the first request service. Optional.
	Overseerr httpclient.Endpoint `mapstructure:"overseerr"`
	// Jellyseerr is the second request service. Optional.
	Jellyseerr httpclient.Endpoint `mapstructure:"jellyseerr"`
	// Sonarr is the library service for series. Required.
	Sonarr httpclient.Endpoint `mapstructure:"sonarr"`
	// Radarr is the library service for movies. Required.
	Radarr httpclient.Endpoint `mapstructure:"radarr"`
	// HTTP holds configuration for the shared HTTP client.
	HTTP httpclient.Config `mapstructure:"http"`
	// Reconcile holds configuration for the reconciliation engine.
	Reconcile reconcile.Config `mapstructure:"reconcile"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// Target is a request service the cleaner may process.
type Target struct {
	// Name is the display name, e.g. "Overseerr".
	Name string
	// Endpoint locates the service API.
	Endpoint httpclient.Endpoint
}

// Enabled reports whether the target was configured.
func (t Target) Enabled() bool {
	return t.Endpoint.Configured()
}

// ConfigError is returned when a configuration value is missing or invalid.
type ConfigError struct {
	// Key is the environment variable (or prefix) at fault.
	Key string
	Err error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Key, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LoadConfig loads configuration from environment variables and the given .env file.
// A missing .env file is not an error; variables already in the environment are
// overridden by the file.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		// Ignore error if file doesn't exist (e.g. production)
		_ = godotenv.Overload(envFile)
	}

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SONARR_URL -> sonarr.url)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Targets returns the request services in processing order, configured or not.
func (c *Config) Targets() []Target {
	return []Target{
		{Name: "Overseerr", Endpoint: c.Overseerr},
		{Name: "Jellyseerr", Endpoint: c.Jellyseerr},
	}
}

// Validate checks the configuration before any network activity. Every problem is
// reported as a *ConfigError; several are joined.
func (c *Config) Validate() error {
	var errs []error

	check := func(key string, err error) {
		if err != nil {
			errs = append(errs, &ConfigError{Key: key, Err: err})
		}
	}

	for _, t := range c.Targets() {
		if t.Enabled() {
			check(strings.ToUpper(t.Name), t.Endpoint.Validate())
		}
	}
	check("SONARR", c.Sonarr.Validate())
	check("RADARR", c.Radarr.Validate())

	if c.HTTP.TimeoutSeconds < 0 {
		check("HTTP_TIMEOUT_SECONDS", fmt.Errorf("must not be negative, got %d", c.HTTP.TimeoutSeconds))
	}
	if c.HTTP.RetryMax < 0 {
		check("HTTP_RETRY_MAX", fmt.Errorf("must not be negative, got %d", c.HTTP.RetryMax))
	}
	if c.Reconcile.Concurrency < 0 {
		check("RECONCILE_CONCURRENCY", fmt.Errorf("must not be negative, got %d", c.Reconcile.Concurrency))
	}
	if c.Reconcile.MaxPageFetches < 0 {
		check("RECONCILE_MAX_PAGE_FETCHES", fmt.Errorf("must not be negative, got %d", c.Reconcile.MaxPageFetches))
	}
	if !c.Reconcile.OnCheckError.IsValid() {
		check("RECONCILE_ON_CHECK_ERROR", fmt.Errorf("must be %q or %q, got %q",
			reconcile.CheckErrorDelete, reconcile.CheckErrorKeep, c.Reconcile.OnCheckError))
	}

	_, err := logger.ParseLevel(c.Log.Level)
	check("LOG_LEVEL", err)
	check("LOG_FORMAT", logger.ValidateFormat(c.Log.Format))

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

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
