// Package config loads and validates runtime configuration from a YAML
// file with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level runtime configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Paths  PathsConfig  `yaml:"paths"`
}

// ServerConfig holds HTTP server settings for the query front end.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// PathsConfig locates the document collection, the stopword list, and the
// directory holding the persisted index files.
type PathsConfig struct {
	DocumentsDir  string `yaml:"documentsDir"`
	DocumentGlob  string `yaml:"documentGlob"`
	StopwordsFile string `yaml:"stopwordsFile"`
	IndexDir      string `yaml:"indexDir"`
}

// Load reads configuration from path. A missing file is not an error: the
// defaults plus environment overrides apply. Any present file must parse.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI flag
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults fills in zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Paths.DocumentsDir == "" {
		c.Paths.DocumentsDir = "./documents"
	}
	if c.Paths.DocumentGlob == "" {
		c.Paths.DocumentGlob = "*.txt"
	}
	if c.Paths.StopwordsFile == "" {
		c.Paths.StopwordsFile = "./stopwords.txt"
	}
	if c.Paths.IndexDir == "" {
		c.Paths.IndexDir = "./indexes"
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	for name, value := range map[string]string{
		"documentsDir":  c.Paths.DocumentsDir,
		"documentGlob":  c.Paths.DocumentGlob,
		"stopwordsFile": c.Paths.StopwordsFile,
		"indexDir":      c.Paths.IndexDir,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("config field %s cannot be empty", name)
		}
	}
	return nil
}

// applyEnvOverrides lets deployment environments override the file values
// without editing it.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TEXTSEARCH_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("TEXTSEARCH_DOCUMENTS_DIR"); v != "" {
		c.Paths.DocumentsDir = v
	}
	if v := os.Getenv("TEXTSEARCH_STOPWORDS_FILE"); v != "" {
		c.Paths.StopwordsFile = v
	}
	if v := os.Getenv("TEXTSEARCH_INDEX_DIR"); v != "" {
		c.Paths.IndexDir = v
	}
}
