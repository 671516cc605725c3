package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays configuration from environment variables onto cfg.
// Only variables that are actually set override the current values; the
// signing secret arrives here as JWT_SEC.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
