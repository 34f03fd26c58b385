// Package config loads runtime configuration for the StaffView client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment: STAFFVIEW_* variables, optionally loaded from a .env file.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   backend API base URL
//	-p          production mode (sign requests with the hash header)
//	-k string   hash signing key
//	-s string   local storage passphrase
//	-d string   path of the local SQLite database
//	-t int      request timeout (milliseconds)
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (json, text, console)
//
// # JSON schema
//
//	{
//	  "api_url": "http://127.0.0.1:8080",
//	  "production": false,
//	  "hash_key": "",
//	  "storage_passphrase": "token",
//	  "db_path": "staffview.db",
//	  "request_timeout": "3m",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
