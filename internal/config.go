package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Store overrides the store filename inside the scope directory.
	Store string `yaml:"store,omitempty"`
	// TopTags bounds the tag ranking returned by statistics.
	TopTags int `yaml:"top_tags"`
}

func DefaultConfig() *Config {
	return &Config{TopTags: DefaultTopTags}
}

func (c *Config) StoreFileName() string {
	if c.Store != "" {
		return c.Store
	}
	return DefaultStoreFile
}

func LoadConfig(scope Scope) (*Config, error) {
	path := scope.ConfigPath()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.TopTags <= 0 {
		cfg.TopTags = DefaultTopTags
	}

	return &cfg, nil
}

func SaveConfig(scope Scope, cfg *Config) error {
	path := scope.ConfigPath()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
