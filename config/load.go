package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load decodes a YAML configuration. Unknown keys are rejected.
func Load(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: yaml: %v", ErrInvalidConfig, err)
	}

	return finish(&cfg)
}

// LoadFile reads path as HCL when it ends in ".hcl" and as YAML otherwise.
func LoadFile(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return LoadHCL(path, src)
	}

	return Load(bytes.NewReader(src))
}

// finish applies defaults and validates.
func finish(cfg *Config) (*Config, error) {
	cfg.applyDefaults()
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = DefaultAlgorithm
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
