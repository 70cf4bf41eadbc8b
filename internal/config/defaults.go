package config

import "github.com/spf13/viper"

// Default values applied before any file or environment override.
const (
	DefaultBind           = ""
	DefaultPort           = 8080
	DefaultRequestTimeout = 30
	DefaultAlphabet       = "url"
	DefaultCacheSize      = 1024
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.bind", DefaultBind)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.request_timeout_seconds", DefaultRequestTimeout)

	// Wallets and explorers exchange the URL-safe bounceable mainnet form,
	// so it is the default rendering.
	v.SetDefault("encode.alphabet", DefaultAlphabet)
	v.SetDefault("encode.bounceable", true)
	v.SetDefault("encode.testnet", false)

	v.SetDefault("cache.size", DefaultCacheSize)
}
