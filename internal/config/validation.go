package config

import "fmt"

// ValidateConfig checks the complete configuration for values that would
// make the daemon misbehave at runtime.
func ValidateConfig(c *Config) error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("server.request_timeout_seconds must be positive, got %d",
			c.Server.RequestTimeoutSeconds)
	}

	switch c.Encode.Alphabet {
	case "std", "url":
	default:
		return fmt.Errorf("encode.alphabet must be \"std\" or \"url\", got %q", c.Encode.Alphabet)
	}

	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must not be negative, got %d", c.Cache.Size)
	}

	return nil
}
