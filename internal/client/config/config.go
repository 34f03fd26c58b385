package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultStoragePassphrase is the passphrase used to seal the session token
// when none is configured.
const DefaultStoragePassphrase = "token"

// DefaultRequestTimeout applies to requests without a timeout header.
const DefaultRequestTimeout = 180000 * time.Millisecond

// Config holds runtime settings for the StaffView client.
type Config struct {
	APIURL            string
	Production        bool
	HashKey           string
	StoragePassphrase string
	DBPath            string
	RequestTimeout    time.Duration
	LogLevel          string
	LogFormat         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://127.0.0.1:8080"
	c.Production = false
	c.HashKey = ""
	c.StoragePassphrase = DefaultStoragePassphrase
	c.DBPath = "staffview.db"
	c.RequestTimeout = DefaultRequestTimeout
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// UsesDefaultPassphrase reports whether the token is sealed with the
// built-in passphrase.
func (c *Config) UsesDefaultPassphrase() bool {
	return c.StoragePassphrase == DefaultStoragePassphrase
}

// Validate checks combinations that cannot work at runtime.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return errors.New("api url is required")
	}
	if c.Production && c.HashKey == "" {
		return errors.New("production mode requires a hash key")
	}
	if c.StoragePassphrase == "" {
		return errors.New("storage passphrase must not be empty")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	// a missing .env is the common case
	_ = godotenv.Load()
	parseEnv(cfg, os.LookupEnv)

	parseFlags(cfg)
	return cfg
}
