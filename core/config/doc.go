// Package config provides configuration management for the cleaner.
//
// It utilizes Viper for loading configuration from environment variables, optionally
// seeded from a .env file. Defaults come from the `default` struct tags of the partial
// configurations, and nested keys map to environment variables by replacing dots with
// underscores (sonarr.url -> SONARR_URL).
//
// # Configuration Structure
//
//   - Overseerr, Jellyseerr: request services (URL, KEY). Each is optional; one that
//     is partly configured is an error.
//   - Sonarr, Radarr: library services (URL, KEY). Required.
//   - HTTP: request timeout and retry budget
//   - Reconcile: fan-out limit, page fetch guard, check-error policy
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".env")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
