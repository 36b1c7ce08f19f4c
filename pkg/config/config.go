// Package config loads the YAML settings that supply util-kit defaults:
// password patterns, encryption material, settle throttling and file writes.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cecil-the-coder/util-kit/pkg/crypt"
	"github.com/cecil-the-coder/util-kit/pkg/errors"
)

// Config is the root of a util-kit YAML file.
type Config struct {
	Password PasswordConfig `yaml:"password"`
	Crypto   CryptoConfig   `yaml:"crypto"`
	Settle   SettleConfig   `yaml:"settle"`
	Files    FilesConfig    `yaml:"files"`
}

// PasswordConfig sets the pattern and length used when callers pass none.
type PasswordConfig struct {
	Pattern string `yaml:"pattern"`
	Length  int    `yaml:"length"`
	Exclude string `yaml:"exclude,omitempty"`
}

// CryptoConfig holds AES-CBC settings. Key and IV are raw strings whose byte
// length must match the algorithm.
type CryptoConfig struct {
	Algorithm string `yaml:"algorithm"`
	Key       string `yaml:"key,omitempty"`
	IV        string `yaml:"iv,omitempty"`
}

// SettleConfig throttles AllSettled. Zero values mean unlimited.
type SettleConfig struct {
	Concurrency   int     `yaml:"concurrency"`
	RatePerSecond float64 `yaml:"rate_per_second"`
	Burst         int     `yaml:"burst"`
}

// FilesConfig sets CreateFile defaults.
type FilesConfig struct {
	Override bool   `yaml:"override"`
	Encoding string `yaml:"encoding"`
}

// Default returns the settings used when no file is loaded.
func Default() *Config {
	return &Config{
		Password: PasswordConfig{Pattern: "*", Length: 16},
		Crypto:   CryptoConfig{Algorithm: string(crypt.DefaultAlgorithm)},
		Files:    FilesConfig{Encoding: "utf8"},
	}
}

// Load reads filename over Default and validates the result.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and that encryption material fits the algorithm.
func (c *Config) Validate() error {
	if c.Password.Length < 0 {
		return errors.Validation("password.length must not be negative")
	}

	alg := crypt.Algorithm(c.Crypto.Algorithm)
	if alg == "" {
		alg = crypt.DefaultAlgorithm
	}
	if alg.KeySize() == 0 {
		return errors.Newf(errors.NameValidation, "crypto.algorithm %q is not supported", c.Crypto.Algorithm)
	}
	if c.Crypto.Key != "" && len(c.Crypto.Key) != alg.KeySize() {
		return errors.Newf(errors.NameValidation, "crypto.key must be %d bytes for %s", alg.KeySize(), alg)
	}
	if c.Crypto.IV != "" && len(c.Crypto.IV) != 16 {
		return errors.Validation("crypto.iv must be 16 bytes")
	}

	if c.Settle.Concurrency < 0 || c.Settle.RatePerSecond < 0 || c.Settle.Burst < 0 {
		return errors.Validation("settle values must not be negative")
	}

	switch c.Files.Encoding {
	case "", "utf8", "utf-16le", "base64":
	default:
		return errors.Newf(errors.NameValidation, "files.encoding %q is not supported", c.Files.Encoding)
	}
	return nil
}
