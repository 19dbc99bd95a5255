// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/wallet-core/src/walletconfig"
)

// Environment variables read by [loadConfig].
const (
	EnvConfigFile = "WALLET_CORE_CONFIG_FILE"
	EnvCertsDir   = "WALLET_CORE_CERTS_DIR"
	EnvPrefsFile  = "WALLET_CORE_PREFS_FILE"
)

// Log formats accepted by the logging.format setting.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// ErrInvalidConfig indicates that a configuration file does not match the embedded schema.
var ErrInvalidConfig = errors.New("cli: invalid configuration file")

//go:embed config.schema.json
var configSchema string

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config is the CLI configuration.
//
// It is loaded from a JSON or YAML file named by --config or the
// WALLET_CORE_CONFIG_FILE environment variable, with defaults applied for
// any missing values. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Repository: external certificate repository appended after the bundled anchors
	Repository struct {
		// Directory: certificate directory, empty for no repository
		Directory string `json:"directory,omitempty" yaml:"directory,omitempty"`
	} `json:"repository" yaml:"repository"`

	// Preferences: key-value store consulted for the issuer override
	Preferences struct {
		// File: YAML preference document, empty for no stored preferences
		File string `json:"file,omitempty" yaml:"file,omitempty"`
	} `json:"preferences" yaml:"preferences"`

	Issuer struct {
		// DefaultURL: issuer used when no override is stored
		DefaultURL string `json:"defaultUrl" yaml:"defaultUrl"`
	} `json:"issuer" yaml:"issuer"`

	Logging struct {
		// Format: "text" or "json"
		Format string `json:"format" yaml:"format"`
	} `json:"logging" yaml:"logging"`
}

// detectConfigFormat determines the configuration file format based on file extension.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// validateConfig checks raw configuration data against the embedded schema.
// YAML documents are decoded first so both formats share one schema.
func validateConfig(data []byte, format configFormat) error {
	var doc gojsonschema.JSONLoader
	switch format {
	case configFormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
		if v == nil {
			v = map[string]any{}
		}
		doc = gojsonschema.NewGoLoader(v)
	default:
		doc = gojsonschema.NewBytesLoader(data)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(configSchema), doc)
	if err != nil {
		return fmt.Errorf("failed to parse JSON config file: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads the CLI configuration from a JSON or YAML file or applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. WALLET_CORE_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults
//  4. WALLET_CORE_CERTS_DIR and WALLET_CORE_PREFS_FILE override config file values
//
// Command-line flags are applied by the caller on top of the result.
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}
	config.Issuer.DefaultURL = walletconfig.DefaultIssuerURL
	config.Logging.Format = LogFormatText

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		format := detectConfigFormat(configPath)
		if err := validateConfig(data, format); err != nil {
			return nil, err
		}
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		if config.Issuer.DefaultURL == "" {
			config.Issuer.DefaultURL = walletconfig.DefaultIssuerURL
		}
		if config.Logging.Format == "" {
			config.Logging.Format = LogFormatText
		}
	}

	if dir := os.Getenv(EnvCertsDir); dir != "" {
		config.Repository.Directory = dir
	}
	if file := os.Getenv(EnvPrefsFile); file != "" {
		config.Preferences.File = file
	}

	return config, nil
}
