package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	content := `
server:
  port: 8080
  allowedOrigins:
    - http://localhost:5173
database:
  uri: mongodb://localhost:27017/brewspot
jwt:
  secret: s3cret
  expiry: 120
seed:
  demo: true
`
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.URI != "mongodb://localhost:27017/brewspot" {
		t.Errorf("database uri = %q", cfg.Database.URI)
	}
	if cfg.JWT.Secret != "s3cret" || cfg.JWT.Expiry != 120 {
		t.Errorf("jwt config = %+v", cfg.JWT)
	}
	if !cfg.Seed.Demo {
		t.Error("seed.demo not parsed")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.yml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
