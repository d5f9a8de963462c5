package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// Empty disables authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of uploaded request bodies in megabytes.
	// Both CSV snapshots arrive in one multipart request, so this bounds
	// the combined upload size.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"32"`
}

// BodyLimitBytes returns the configured body limit in bytes, falling back to
// the default when the configured value is not positive.
func (c Config) BodyLimitBytes() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = 32
	}
	return mb * 1024 * 1024
}
