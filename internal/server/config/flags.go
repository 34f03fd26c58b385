package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/staffview/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-r string   Redis URL for sessions
//	-t int      session lifetime, minutes
//	-k string   hash signing key
//	-p          production mode
//	-l string   log level
//	-f string   log format (json, text, console)
//	-seed       seed demo data on an empty store
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-r", "-t", "-k", "-l", "-f"}, "-p", "-seed")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisURL, "r", config.RedisURL, "redis URL")
	sessionTTL := fs.Int("t", int(config.SessionTTL.Minutes()), "session ttl (in minutes)")
	fs.StringVar(&config.HashKey, "k", config.HashKey, "hash signing key")
	fs.BoolVar(&config.Production, "p", config.Production, "production mode")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format")
	fs.BoolVar(&config.SeedDemoData, "seed", config.SeedDemoData, "seed demo data")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
}
