// Package config loads server configuration from the environment.
package config

import "os"

// Config holds every environment-derived setting the server needs at
// startup. There is no config file or remote config source: the
// environment surface here is small enough that a dedicated config
// library would add a dependency without removing any complexity.
type Config struct {
	StoreHost         string
	StorePort         string
	WSHost            string
	WSPort            string
	CORSOriginPattern string
	LogLevel          string
}

// Load reads configuration from the environment, applying defaults
// for anything unset. WS_HOST/WS_PORT is where the HTTP server binds:
// the same gin engine serves both the REST surface and the /ws
// upgrade, so there is one listener address, not a separate one per
// concern.
func Load() Config {
	return Config{
		StoreHost:         getenv("STORE_HOST", "localhost"),
		StorePort:         getenv("STORE_PORT", "6379"),
		WSHost:            getenv("WS_HOST", "0.0.0.0"),
		WSPort:            getenv("WS_PORT", "8080"),
		CORSOriginPattern: getenv("CORS_ORIGIN_PATTERN", "*"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
