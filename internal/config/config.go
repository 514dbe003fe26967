// Package config resolves runtime settings from defaults and NOTEBOOK_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/creasty/defaults"
)

const (
	envDBPath   = "NOTEBOOK_DB_PATH"
	envLogLevel = "NOTEBOOK_LOG_LEVEL"
	envHistory  = "NOTEBOOK_HISTORY"
)

type Config struct {
	// DBPath is the SQLite file holding the notes table.
	DBPath string `default:"notes.db"`
	// LogLevel is one of debug, info, warn, error. Logs go to stderr.
	LogLevel string `default:"warn"`
	// HistoryFile stores terminal prompt history. Empty disables history.
	HistoryFile string
}

// Load builds a Config from defaults, then applies environment overrides.
func Load() (*Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (*Config, error) {
	c := new(Config)
	if err := defaults.Set(c); err != nil {
		return nil, fmt.Errorf("set default config: %w", err)
	}
	c.HistoryFile = defaultHistoryFile()

	if v, ok := lookup(envDBPath); ok && v != "" {
		c.DBPath = v
	}
	if v, ok := lookup(envLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	// An explicitly empty NOTEBOOK_HISTORY turns history off.
	if v, ok := lookup(envHistory); ok {
		c.HistoryFile = v
	}
	return c, nil
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".notebook_history")
}
