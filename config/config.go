package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default settings used when no config file is present.
const (
	DefaultAddr      = ":8080"
	DefaultDBPath    = "data/badger"
	DefaultFeedLimit = 20
)

// Config stores inkwell configuration loaded from inkwell.yaml.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Blog   BlogConfig   `yaml:"blog"`
}

// ServerConfig holds the HTTP listen address and the Badger database path.
type ServerConfig struct {
	Addr   string `yaml:"addr"`
	DBPath string `yaml:"db_path"`
}

// BlogConfig holds blog presentation settings.
type BlogConfig struct {
	// FeedLimit caps the server-rendered feed. Zero means unlimited.
	FeedLimit int `yaml:"feed_limit"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:   DefaultAddr,
			DBPath: DefaultDBPath,
		},
		Blog: BlogConfig{
			FeedLimit: DefaultFeedLimit,
		},
	}
}

// GetConfigPath returns the config file path, honoring INKWELL_CONFIG.
func GetConfigPath() string {
	if path := os.Getenv("INKWELL_CONFIG"); path != "" {
		return path
	}
	return "inkwell.yaml"
}

// Load reads config from disk. Returns the default config if the file
// doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads config from the given path, filling unset fields with
// defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Server.DBPath == "" {
		cfg.Server.DBPath = DefaultDBPath
	}
	if cfg.Blog.FeedLimit < 0 {
		cfg.Blog.FeedLimit = 0
	}
	return cfg, nil
}
