package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/staffview/internal/flagx"
	"github.com/dmitrijs2005/staffview/internal/timex"
)

// JsonConfig is the on-disk shape of the client configuration. Absent fields
// keep their earlier values.
type JsonConfig struct {
	APIURL            string         `json:"api_url"`
	Production        *bool          `json:"production"`
	HashKey           string         `json:"hash_key"`
	StoragePassphrase string         `json:"storage_passphrase"`
	DBPath            string         `json:"db_path"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	LogLevel          string         `json:"log_level"`
	LogFormat         string         `json:"log_format"`
}

// parseJson overlays cfg with the file given by -c or -config.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIURL != "" {
		cfg.APIURL = jc.APIURL
	}
	if jc.Production != nil {
		cfg.Production = *jc.Production
	}
	if jc.HashKey != "" {
		cfg.HashKey = jc.HashKey
	}
	if jc.StoragePassphrase != "" {
		cfg.StoragePassphrase = jc.StoragePassphrase
	}
	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
}
