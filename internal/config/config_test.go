package config

import (
	"testing"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	c, err := load(lookupFrom(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.DBPath != "notes.db" {
		t.Errorf("DBPath = %q, want %q", c.DBPath, "notes.db")
	}
	if c.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", c.LogLevel, "warn")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	c, err := load(lookupFrom(map[string]string{
		envDBPath:   "/tmp/mine.db",
		envLogLevel: "debug",
		envHistory:  "/tmp/hist",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.DBPath != "/tmp/mine.db" {
		t.Errorf("DBPath = %q, want %q", c.DBPath, "/tmp/mine.db")
	}
	if c.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", c.LogLevel, "debug")
	}
	if c.HistoryFile != "/tmp/hist" {
		t.Errorf("HistoryFile = %q, want %q", c.HistoryFile, "/tmp/hist")
	}
}

func TestLoadEmptyValues(t *testing.T) {
	c, err := load(lookupFrom(map[string]string{
		envDBPath:  "",
		envHistory: "",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.DBPath != "notes.db" {
		t.Errorf("empty %s should keep default, got %q", envDBPath, c.DBPath)
	}
	if c.HistoryFile != "" {
		t.Errorf("empty %s should disable history, got %q", envHistory, c.HistoryFile)
	}
}
