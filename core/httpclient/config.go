package httpclient

import (
	"fmt"
	"net/url"
	"strings"
)

// Config holds configuration for the shared HTTP transport.
type Config struct {
	// TimeoutSeconds bounds every request, including reading the body.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RetryMax is the number of retries for connection errors and 5xx responses.
	RetryMax int `mapstructure:"retry_max" default:"0"`
}

// Endpoint identifies one remote service: its base address and API key.
type Endpoint struct {
	// URL is the API base address, e.g. http://sonarr:8989/api/v3.
	URL string `mapstructure:"url" default:""`
	// Key is sent in the x-api-key header.
	Key string `mapstructure:"key" default:""`
}

// Configured reports whether any part of the endpoint was provided.
func (e Endpoint) Configured() bool {
	return e.URL != "" || e.Key != ""
}

// BaseURL returns the URL without trailing slashes.
func (e Endpoint) BaseURL() string {
	return strings.TrimRight(e.URL, "/")
}

// Validate checks that both values are present and the URL is absolute http(s).
func (e Endpoint) Validate() error {
	if e.URL == "" {
		return fmt.Errorf("url is required")
	}
	if e.Key == "" {
		return fmt.Errorf("key is required")
	}
	u, err := url.Parse(e.URL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", e.URL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid url %q: must be an absolute http(s) address", e.URL)
	}
	return nil
}
