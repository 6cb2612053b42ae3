package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// APIKeysEnv holds comma-separated Gemini API keys used when the file lists none.
const APIKeysEnv = "GEMINI_API_KEYS"

// Load reads a YAML or TOML file (chosen by extension) over Default() and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse toml config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse yaml config: %w", err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault behaves like Load but falls back to validated defaults when
// path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		cfg.applyEnv()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return Load(path)
}

func (c *Config) applyEnv() {
	if len(c.Gemini.APIKeys) > 0 {
		return
	}
	for _, k := range strings.Split(os.Getenv(APIKeysEnv), ",") {
		if k = strings.TrimSpace(k); k != "" {
			c.Gemini.APIKeys = append(c.Gemini.APIKeys, k)
		}
	}
}
