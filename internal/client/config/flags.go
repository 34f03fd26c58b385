package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/staffview/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed here are considered; see the package doc for their meaning.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-s", "-d", "-t", "-l", "-f"}, "-p")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "backend API base URL")
	fs.BoolVar(&cfg.Production, "p", cfg.Production, "production mode")
	fs.StringVar(&cfg.HashKey, "k", cfg.HashKey, "hash signing key")
	fs.StringVar(&cfg.StoragePassphrase, "s", cfg.StoragePassphrase, "local storage passphrase")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local database path")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Milliseconds()), "request timeout (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Millisecond
}
