package config

// Config represents the complete tonaddrd configuration.
type Config struct {
	// Server section: where the JSON-RPC / WebSocket API listens.
	Server ServerConfig `toml:"server" mapstructure:"server"`

	// Encode section: flags applied when a request does not specify its own.
	Encode EncodeConfig `toml:"encode" mapstructure:"encode"`

	// Cache section: memoization of parse results on the server path.
	Cache CacheConfig `toml:"cache" mapstructure:"cache"`

	// Path the config was loaded from, kept for diagnostics.
	configPath string
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Bind string `toml:"bind" mapstructure:"bind"`
	Port int    `toml:"port" mapstructure:"port"`

	// RequestTimeoutSeconds bounds each RPC request.
	RequestTimeoutSeconds int `toml:"request_timeout_seconds" mapstructure:"request_timeout_seconds"`
}

// EncodeConfig holds the default friendly-form rendering options.
// Alphabet is "std" or "url".
type EncodeConfig struct {
	Alphabet   string `toml:"alphabet" mapstructure:"alphabet"`
	Bounceable bool   `toml:"bounceable" mapstructure:"bounceable"`
	Testnet    bool   `toml:"testnet" mapstructure:"testnet"`
}

// CacheConfig holds the parse-cache settings.
type CacheConfig struct {
	// Size is the number of parse results kept in memory. Zero disables
	// the cache.
	Size int `toml:"size" mapstructure:"size"`
}

// ConfigPath returns the path of the loaded configuration file, or an empty
// string when only defaults and environment variables were used.
func (c *Config) ConfigPath() string {
	return c.configPath
}
