package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestApplyDefaults(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		viper.Reset()
		cfg := Config{}
		applyDefaults(&cfg)

		if cfg.ModDBBaseURL != DefaultBaseURL {
			t.Errorf("Expected ModDBBaseURL to be %s, got %s", DefaultBaseURL, cfg.ModDBBaseURL)
		}
		if cfg.CacheDir != "." {
			t.Errorf("Expected CacheDir to be ., got %s", cfg.CacheDir)
		}
		if cfg.DatabasePath != filepath.Join(".", DefaultDatabaseFile) {
			t.Errorf("Expected DatabasePath to default next to the cache dir, got %s", cfg.DatabasePath)
		}
		if cfg.UserAgent == "" {
			t.Error("Expected UserAgent to have a default value")
		}
	})

	t.Run("respects existing values", func(t *testing.T) {
		viper.Reset()
		cfg := Config{
			ModDBBaseURL: "http://localhost:8080",
			CacheDir:     "/tmp/vs-cache",
			DatabasePath: "/tmp/vs.sqlite3",
			UserAgent:    "custom-agent",
		}
		applyDefaults(&cfg)

		if cfg.ModDBBaseURL != "http://localhost:8080" {
			t.Errorf("Expected ModDBBaseURL to stay http://localhost:8080, got %s", cfg.ModDBBaseURL)
		}
		if cfg.CacheDir != "/tmp/vs-cache" {
			t.Errorf("Expected CacheDir to stay /tmp/vs-cache, got %s", cfg.CacheDir)
		}
		if cfg.DatabasePath != "/tmp/vs.sqlite3" {
			t.Errorf("Expected DatabasePath to stay /tmp/vs.sqlite3, got %s", cfg.DatabasePath)
		}
		if cfg.UserAgent != "custom-agent" {
			t.Errorf("Expected UserAgent to stay custom-agent, got %s", cfg.UserAgent)
		}
	})
}

func TestEnsureCacheDir(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("creates missing directory", func(t *testing.T) {
		cacheDir := filepath.Join(tmpDir, "cache")
		cfg := Config{CacheDir: cacheDir}
		if err := ensureCacheDir(&cfg); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if _, err := os.Stat(cacheDir); os.IsNotExist(err) {
			t.Error("Cache directory was not created")
		}
	})

	t.Run("accepts existing directory", func(t *testing.T) {
		cfg := Config{CacheDir: tmpDir}
		if err := ensureCacheDir(&cfg); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	})
}

func TestCachePaths(t *testing.T) {
	cfg := Config{CacheDir: "/data"}
	if got := cfg.ModsCachePath(); got != filepath.Join("/data", ModsCacheFile) {
		t.Errorf("ModsCachePath() = %s", got)
	}
	if got := cfg.AuthorsCachePath(); got != filepath.Join("/data", AuthorsCacheFile) {
		t.Errorf("AuthorsCachePath() = %s", got)
	}
}
