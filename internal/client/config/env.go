package config

import (
	"strconv"
	"time"
)

const envPrefix = "STAFFVIEW_"

// parseEnv overlays cfg with STAFFVIEW_* variables. Unparsable booleans and
// durations are ignored.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) {
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}

	str("API_URL", &cfg.APIURL)
	str("HASH_KEY", &cfg.HashKey)
	str("STORAGE_PASSPHRASE", &cfg.StoragePassphrase)
	str("DB_PATH", &cfg.DBPath)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)

	if v, ok := lookup(envPrefix + "PRODUCTION"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Production = b
		}
	}
	if v, ok := lookup(envPrefix + "REQUEST_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
}
