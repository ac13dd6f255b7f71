// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	json5 "github.com/yosuke-furukawa/json5/encoding/json5"
	"gopkg.in/yaml.v3"
)

// Environment variables read by [Load].
const (
	EnvConfigFile = "FASTCALL_CONFIG_FILE"
	EnvFormat     = "FASTCALL_FORMAT"
	EnvLogFormat  = "FASTCALL_LOG_FORMAT"
)

// Output formats for rendered messages.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Log formats, matching the logger package.
const (
	LogFormatCLI  = "cli"
	LogFormatJSON = "json"
)

var (
	outputFormats = []string{FormatText, FormatJSON, FormatTable}
	logFormats    = []string{LogFormatCLI, LogFormatJSON}
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
	// configFormatJSON5 represents JSON5 configuration format (.json5)
	configFormatJSON5
)

// Config represents the fastcall configuration.
type Config struct {
	// Defaults: Default behaviour of the message commands
	Defaults struct {
		// Format: Output format for rendered messages (text, json, table)
		Format string `json:"format" yaml:"format"`
		// Keyword: Build keyword params by default in "fastcall new"
		Keyword bool `json:"keyword" yaml:"keyword"`
		// Validate: Run schema validation before decoding
		Validate bool `json:"validate" yaml:"validate"`
	} `json:"defaults" yaml:"defaults"`

	// Log: Diagnostic output settings
	Log struct {
		// Format: cli for plain text or json for structured lines
		Format string `json:"format" yaml:"format"`
		// Silent: Suppress structured log output
		Silent bool `json:"silent" yaml:"silent"`
	} `json:"log" yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	config := &Config{}
	config.Defaults.Format = FormatText
	config.Defaults.Keyword = true
	config.Log.Format = LogFormatCLI
	return config
}

// detectConfigFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; unknown extensions are read as JSON.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	case ".json5":
		return configFormatJSON5
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	case configFormatJSON5:
		if err := json5.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON5 config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load loads configuration from a JSON, YAML or JSON5 file or applies defaults.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml, .json5
//
// Returns:
//   - A pointer to the loaded Config struct with defaults applied
//   - An error if the configuration file cannot be read or parsed
//
// Configuration Priority:
//  1. Default values are set
//  2. FASTCALL_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if file exists and is valid)
//  4. Environment variables override config file values (FASTCALL_FORMAT, FASTCALL_LOG_FORMAT)
//
// Unknown format names fall back to their defaults.
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("config: failed to read config file: %w", err)
		}

		if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	if v := os.Getenv(EnvFormat); v != "" {
		config.Defaults.Format = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		config.Log.Format = v
	}

	config.Defaults.Format = strings.ToLower(config.Defaults.Format)
	if !slices.Contains(outputFormats, config.Defaults.Format) {
		config.Defaults.Format = FormatText
	}
	config.Log.Format = strings.ToLower(config.Log.Format)
	if !slices.Contains(logFormats, config.Log.Format) {
		config.Log.Format = LogFormatCLI
	}

	return config, nil
}

// ValidFormat reports whether format is a known output format.
func ValidFormat(format string) bool {
	return slices.Contains(outputFormats, format)
}
