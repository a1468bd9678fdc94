package hostapi

import "errors"

// Config validation errors
var (
	ErrConfigMissingBaseURL     = errors.New("hostapi: missing base URL")
	ErrConfigMissingAccessToken = errors.New("hostapi: missing access token")
)

// Config holds the host platform API connection settings
type Config struct {
	// BaseURL is the admin API root, e.g. https://shop.example.com/admin/api/2024-07
	BaseURL string
	// AccessToken authenticates every request
	AccessToken string
	// TimeoutSeconds bounds a single API round trip, 0 means default
	TimeoutSeconds int
}

// Validate checks that required settings are present
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.AccessToken == "" {
		return ErrConfigMissingAccessToken
	}
	return nil
}
