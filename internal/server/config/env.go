package config

import (
	"strconv"
	"time"
)

const envPrefix = "STAFFVIEW_"

// parseEnv overlays config with STAFFVIEW_* variables. HASH_KEY and
// PRODUCTION are shared with the client. Unparsable values are ignored.
func parseEnv(config *Config, lookup func(string) (string, bool)) {
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) {
		if v, ok := lookup(envPrefix + name); ok {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}

	str("HTTP_ADDR", &config.HTTPAddr)
	str("DATABASE_DSN", &config.DatabaseDSN)
	str("REDIS_URL", &config.RedisURL)
	str("HASH_KEY", &config.HashKey)
	str("LOG_LEVEL", &config.LogLevel)
	str("LOG_FORMAT", &config.LogFormat)
	boolean("PRODUCTION", &config.Production)
	boolean("SEED_DEMO_DATA", &config.SeedDemoData)

	if v, ok := lookup(envPrefix + "SESSION_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			config.SessionTTL = d
		}
	}
}
