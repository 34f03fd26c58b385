// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment and command-line flags.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the StaffView backend.
//
// Fields:
//   - HTTPAddr: bind address of the HTTP API.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps data in memory.
//   - RedisURL: session store URL. Empty keeps sessions in memory.
//   - SessionTTL: lifetime of a login session.
//   - HashKey / Production: in production mode every API request must carry
//     a hash header signed with HashKey.
//   - SeedDemoData: create a demo user and employees on an empty store.
type Config struct {
	HTTPAddr     string
	DatabaseDSN  string
	RedisURL     string
	SessionTTL   time.Duration
	HashKey      string
	Production   bool
	LogLevel     string
	LogFormat    string
	SeedDemoData bool
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8080"
	c.DatabaseDSN = ""
	c.RedisURL = ""
	c.SessionTTL = 24 * time.Hour
	c.HashKey = ""
	c.Production = false
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.SeedDemoData = true
}

// Validate checks combinations that cannot work at runtime.
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return errors.New("http address is required")
	}
	if c.SessionTTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	if c.Production && c.HashKey == "" {
		return errors.New("production mode requires a hash key")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally from command-line
// flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	_ = godotenv.Load()
	parseEnv(cfg, os.LookupEnv)

	parseFlags(cfg)
	return cfg
}
