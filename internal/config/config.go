// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import "unicode/utf8"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Files   FilesConfig
	CSV     CSVConfig
	Logging LoggingConfig
}

// FilesConfig holds the input/output pair for a single run.
type FilesConfig struct {
	// Input is the delimited text file to read (default: ./input/hevydata.csv)
	Input string `env:"INPUT_FILE" default:"./input/hevydata.csv"`

	// Output is the file to create or overwrite (default: ./output/hevy-good.csv)
	Output string `env:"OUTPUT_FILE" default:"./output/hevy-good.csv"`
}

// CSVConfig holds parsing and serialization settings.
type CSVConfig struct {
	// Profile selects the registered output column schema (default: hevy)
	Profile string `env:"CSV_PROFILE" default:"hevy"`

	// Transforms is a comma-separated list of transform names.
	// Empty means the profile's defaults.
	Transforms []string `env:"CSV_TRANSFORMS"`

	// Delimiter is the field separator for both input and output (default: ,)
	Delimiter string `env:"CSV_DELIMITER" default:","`

	// LazyQuotes allows bare quotes inside unquoted fields (default: false)
	LazyQuotes bool `env:"CSV_LAZY_QUOTES" default:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Comma returns the configured delimiter as a rune.
// Validate guarantees exactly one rune.
func (c *CSVConfig) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
