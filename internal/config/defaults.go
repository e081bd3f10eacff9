package config

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "warn",
	}
}
