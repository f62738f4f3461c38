package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Remote.FetchLimit != 100 {
		t.Errorf("fetch limit = %d, want 100", cfg.Remote.FetchLimit)
	}
	if cfg.UI.ErrorTTL != 3*time.Second {
		t.Errorf("error ttl = %v, want 3s", cfg.UI.ErrorTTL)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
remote:
  base_url: http://localhost:9090
  timeout: 5s
server:
  port: "9090"
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Remote.BaseURL != "http://localhost:9090" {
		t.Errorf("base url = %q", cfg.Remote.BaseURL)
	}
	if cfg.Remote.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Remote.Timeout)
	}
	// untouched keys keep their defaults
	if cfg.Remote.FetchLimit != 100 {
		t.Errorf("fetch limit = %d, want 100", cfg.Remote.FetchLimit)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("TODOBOARD_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("API_BASE", "http://127.0.0.1:8081")
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/todos")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Remote.BaseURL != "http://127.0.0.1:8081" {
		t.Errorf("base url = %q", cfg.Remote.BaseURL)
	}
	if cfg.Server.Port != "8081" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.DB.DSN != "postgres://u:p@localhost/todos" {
		t.Errorf("dsn = %q", cfg.DB.DSN)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base url", func(c *Config) { c.Remote.BaseURL = "" }},
		{"zero fetch limit", func(c *Config) { c.Remote.FetchLimit = 0 }},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }},
		{"non numeric port", func(c *Config) { c.Server.Port = "http" }},
		{"zero error ttl", func(c *Config) { c.UI.ErrorTTL = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
