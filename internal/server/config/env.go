package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays environment variables onto the Config using the struct's
// env tags. Unset variables leave the existing (default) values in place.
func parseEnv(cfg *Config) error {
	return env.Parse(cfg)
}
