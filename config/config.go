package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Defaults match the values that used to be hard-coded in the original puller
// script: the public ModDB endpoint, cache files next to the program, and a
// sqlite file in the same place.
const (
	DefaultBaseURL      = "https://mods.vintagestory.at"
	DefaultDatabaseFile = "vintage_story_mods.sqlite3"
	ModsCacheFile       = "mods.json"
	AuthorsCacheFile    = "authors.json"
)

// Config holds all configuration for the application.
// Values are loaded by Viper from a config file and/or environment variables.
type Config struct {
	ModDBBaseURL string `mapstructure:"MODDB_BASE_URL"`
	CacheDir     string `mapstructure:"CACHE_DIR"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	UserAgent    string `mapstructure:"USERAGENT"`
}

// ModsCachePath returns the on-disk location of the raw mods collection.
func (c Config) ModsCachePath() string {
	return filepath.Join(c.CacheDir, ModsCacheFile)
}

// AuthorsCachePath returns the on-disk location of the raw authors collection.
func (c Config) AuthorsCachePath() string {
	return filepath.Join(c.CacheDir, AuthorsCacheFile)
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)   // Path to look for the config file in
	viper.SetConfigName(".env") // Name of config file (without extension)
	viper.SetConfigType("env")  // REQUIRED if the config file does not have the extension in the name

	vipErr := viper.ReadInConfig()
	if _, ok := vipErr.(viper.ConfigFileNotFoundError); ok {
		slog.Info("Config file (.env) not found, relying on environment variables.")
	} else if vipErr != nil {
		return Config{}, fmt.Errorf("fatal error config file: %w", vipErr)
	}

	// Bind environment variables automatically.
	viper.AutomaticEnv()

	for key, env := range map[string]string{
		"moddb_base_url": "MODDB_BASE_URL",
		"cache_dir":      "CACHE_DIR",
		"database_path":  "DATABASE_PATH",
		"useragent":      "USERAGENT",
	} {
		if bindErr := viper.BindEnv(key, env); bindErr != nil {
			slog.Warn("Unable to bind env var", "env", env, "error", bindErr)
		}
	}

	if vipErr = viper.Unmarshal(&config); vipErr != nil {
		return Config{}, fmt.Errorf("unable to decode into struct, %w", vipErr)
	}

	applyDefaults(&config)

	if err := ensureCacheDir(&config); err != nil {
		return Config{}, err
	}

	return config, nil
}

// applyDefaults fills unset fields with the original hard-coded values.
func applyDefaults(config *Config) {
	if config.ModDBBaseURL == "" {
		config.ModDBBaseURL = DefaultBaseURL
	}
	if config.CacheDir == "" {
		config.CacheDir = "."
	}
	if config.DatabasePath == "" {
		config.DatabasePath = filepath.Join(config.CacheDir, DefaultDatabaseFile)
	}
	if config.UserAgent == "" {
		config.UserAgent = "vsmodpuller/dev"
		slog.Warn("USERAGENT not set in config or environment, using default.")
	}
}

// ensureCacheDir creates the cache directory when missing.
func ensureCacheDir(config *Config) error {
	if _, err := os.Stat(config.CacheDir); os.IsNotExist(err) {
		slog.Info("Cache directory does not exist, creating it", "path", config.CacheDir)
		if err := os.MkdirAll(config.CacheDir, 0755); err != nil {
			slog.Error("Failed to create cache directory", "path", config.CacheDir, "error", err)
			return err
		}
	} else if err != nil {
		slog.Error("Failed to check cache directory", "path", config.CacheDir, "error", err)
		return err
	}
	return nil
}
