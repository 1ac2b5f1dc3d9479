package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Files.Input != "./input/hevydata.csv" {
		t.Errorf("Files.Input = %q, want %q", cfg.Files.Input, "./input/hevydata.csv")
	}
	if cfg.Files.Output != "./output/hevy-good.csv" {
		t.Errorf("Files.Output = %q, want %q", cfg.Files.Output, "./output/hevy-good.csv")
	}
	if cfg.CSV.Profile != "hevy" {
		t.Errorf("CSV.Profile = %q, want %q", cfg.CSV.Profile, "hevy")
	}
	if cfg.CSV.Comma() != ',' {
		t.Errorf("CSV.Comma() = %q, want %q", cfg.CSV.Comma(), ',')
	}
	if len(cfg.CSV.Transforms) != 0 {
		t.Errorf("CSV.Transforms = %v, want empty", cfg.CSV.Transforms)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	t.Setenv("INPUT_FILE", "/data/in.csv")
	t.Setenv("OUTPUT_FILE", "/data/out.csv")
	t.Setenv("CSV_DELIMITER", ";")
	t.Setenv("CSV_LAZY_QUOTES", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Files.Input != "/data/in.csv" {
		t.Errorf("Files.Input = %q, want %q", cfg.Files.Input, "/data/in.csv")
	}
	if cfg.Files.Output != "/data/out.csv" {
		t.Errorf("Files.Output = %q, want %q", cfg.Files.Output, "/data/out.csv")
	}
	if cfg.CSV.Comma() != ';' {
		t.Errorf("CSV.Comma() = %q, want %q", cfg.CSV.Comma(), ';')
	}
	if !cfg.CSV.LazyQuotes {
		t.Error("CSV.LazyQuotes = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_CommaSeparatedTransforms(t *testing.T) {
	t.Setenv("CSV_TRANSFORMS", "date_noon, trim ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	expected := []string{"date_noon", "trim"}
	if len(cfg.CSV.Transforms) != len(expected) {
		t.Fatalf("Transforms length = %d, want %d", len(cfg.CSV.Transforms), len(expected))
	}
	for i, v := range expected {
		if cfg.CSV.Transforms[i] != v {
			t.Errorf("Transforms[%d] = %q, want %q", i, cfg.CSV.Transforms[i], v)
		}
	}
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("CSV_LAZY_QUOTES", "sometimes")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for invalid CSV_LAZY_QUOTES")
	}
	if !strings.Contains(err.Error(), "CSV_LAZY_QUOTES") {
		t.Errorf("error should mention CSV_LAZY_QUOTES: %v", err)
	}
}

func validConfig() *Config {
	return &Config{
		Files:   FilesConfig{Input: "in.csv", Output: "out.csv"},
		CSV:     CSVConfig{Profile: "hevy", Delimiter: ","},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"tab delimiter", func(c *Config) { c.CSV.Delimiter = "\t" }, ""},
		{"empty input", func(c *Config) { c.Files.Input = " " }, "INPUT_FILE"},
		{"empty output", func(c *Config) { c.Files.Output = "" }, "OUTPUT_FILE"},
		{"same file", func(c *Config) { c.Files.Output = "./in.csv" }, "must differ"},
		{"empty profile", func(c *Config) { c.CSV.Profile = "" }, "CSV_PROFILE"},
		{"long delimiter", func(c *Config) { c.CSV.Delimiter = ",," }, "CSV_DELIMITER"},
		{"quote delimiter", func(c *Config) { c.CSV.Delimiter = `"` }, "CSV_DELIMITER"},
		{"newline delimiter", func(c *Config) { c.CSV.Delimiter = "\n" }, "CSV_DELIMITER"},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error should mention %s: %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_ReportsAllFailures(t *testing.T) {
	cfg := validConfig()
	cfg.Files.Input = ""
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	for _, want := range []string{"INPUT_FILE", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s: %v", want, err)
		}
	}
}

func TestConfigString(t *testing.T) {
	str := validConfig().String()
	for _, want := range []string{`Input: "in.csv"`, `Profile: "hevy"`, `Level: "info"`} {
		if !strings.Contains(str, want) {
			t.Errorf("String() = %s, missing %s", str, want)
		}
	}
}
