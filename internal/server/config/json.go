package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/staffview/internal/flagx"
	"github.com/dmitrijs2005/staffview/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Absent fields
// keep their earlier values.
type JsonConfig struct {
	HTTPAddr     string         `json:"http_addr"`
	DatabaseDSN  string         `json:"database_dsn"`
	RedisURL     string         `json:"redis_url"`
	SessionTTL   timex.Duration `json:"session_ttl"`
	HashKey      string         `json:"hash_key"`
	Production   *bool          `json:"production"`
	LogLevel     string         `json:"log_level"`
	LogFormat    string         `json:"log_format"`
	SeedDemoData *bool          `json:"seed_demo_data"`
}

// parseJson loads configuration values from the file named by -c or
// -config. It panics if the file cannot be read or parsed.
func parseJson(config *Config) {

	jsonConfigFile := flagx.ConfigFileFlag()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.RedisURL, c.RedisURL)
	setString(&config.HashKey, c.HashKey)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)

	if c.SessionTTL.Duration > 0 {
		config.SessionTTL = c.SessionTTL.Duration
	}
	if c.Production != nil {
		config.Production = *c.Production
	}
	if c.SeedDemoData != nil {
		config.SeedDemoData = *c.SeedDemoData
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
