package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", "http://h:1", "-p", "-k", "key", "-s", "pw", "-d", "x.db", "-t", "2500", "-l", "debug", "-f", "json"},
			expected: &Config{APIURL: "http://h:1", Production: true, HashKey: "key", StoragePassphrase: "pw", DBPath: "x.db",
				RequestTimeout: 2500 * time.Millisecond, LogLevel: "debug", LogFormat: "json"}},
		{name: "unknown flags are ignored", args: []string{"cmd", "-x", "1", "-a=http://h:2"},
			expected: &Config{APIURL: "http://h:2"}},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
