package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.DBName != "wedconnect" {
		t.Errorf("expected default db name wedconnect, got %s", cfg.Database.DBName)
	}
	if cfg.JWT.Expiration != 24*time.Hour {
		t.Errorf("expected 24h token expiration, got %v", cfg.JWT.Expiration)
	}
	if cfg.JWT.RefreshExp != 168*time.Hour {
		t.Errorf("expected 168h refresh expiration, got %v", cfg.JWT.RefreshExp)
	}
	if cfg.Matching.RequestTimeout != 60*time.Second {
		t.Errorf("expected 60s matching timeout, got %v", cfg.Matching.RequestTimeout)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logger.Level)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("MATCHING_REQUEST_TIMEOUT", "15")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("expected db host db.internal, got %s", cfg.Database.Host)
	}
	if cfg.JWT.Expiration != 2*time.Hour {
		t.Errorf("expected 2h token expiration, got %v", cfg.JWT.Expiration)
	}
	if cfg.Matching.RequestTimeout != 15*time.Second {
		t.Errorf("expected 15s matching timeout, got %v", cfg.Matching.RequestTimeout)
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logger.Level)
	}
}
