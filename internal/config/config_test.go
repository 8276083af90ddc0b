package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test default values
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("Expected default output dir to be '%s', got '%s'", DefaultOutputDir, cfg.OutputDir)
	}

	if cfg.Verify {
		t.Error("Expected verification to be disabled by default")
	}

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected default version to be '1.0.0', got '%s'", cfg.Version)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				OutputDir: filepath.Join(t.TempDir(), "forms"),
				LogLevel:  "info",
			},
			wantErr: false,
		},
		{
			name: "empty output dir",
			config: &Config{
				OutputDir: "",
				LogLevel:  "info",
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: &Config{
				OutputDir: t.TempDir(),
				LogLevel:  "loud",
			},
			wantErr: true,
		},
		{
			name: "debug log level",
			config: &Config{
				OutputDir: t.TempDir(),
				LogLevel:  "debug",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "forms")
	cfg := &Config{
		OutputDir: dir,
		LogLevel:  "info",
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	// Validate again now that the directory exists
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on existing directory returned error: %v", err)
	}
}

func TestIsDebug(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.IsDebug() {
		t.Error("Expected IsDebug() to be false for default config")
	}

	cfg.LogLevel = "debug"
	if !cfg.IsDebug() {
		t.Error("Expected IsDebug() to be true for debug log level")
	}
}

func TestConfigString(t *testing.T) {
	cfg := &Config{
		OutputDir: "/tmp/forms",
		Verify:    true,
		LogLevel:  "info",
	}

	s := cfg.String()
	for _, want := range []string{"/tmp/forms", "true", "info"} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected String() to contain '%s', got '%s'", want, s)
		}
	}
}
