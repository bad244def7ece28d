package config

import (
	"testing"
	"time"
)

func TestLoad_MissingDBAddr_Fails(t *testing.T) {
	t.Setenv("DB_ADDR", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing DB_ADDR")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_ADDR", "postgres://localhost:5432/dashboard")
	t.Setenv("ENV", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("HTTP_READ_TIMEOUT", "")
	t.Setenv("HTTP_WRITE_TIMEOUT", "")
	t.Setenv("HTTP_IDLE_TIMEOUT", "")
	t.Setenv("SECURE_COOKIES", "")
	t.Setenv("SEED_DEMO_DATA", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Env != "dev" {
		t.Fatalf("expected dev env, got %q", cfg.Env)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.HTTPAddr)
	}
	if cfg.HTTPReadTimeout != 10*time.Second {
		t.Fatalf("expected 10s read timeout, got %v", cfg.HTTPReadTimeout)
	}
	if cfg.SecureCookies {
		t.Fatal("dev env must default to insecure cookies")
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("expected redis optional/empty, got %q", cfg.RedisAddr)
	}
}

func TestLoad_ProdDefaultsToSecureCookies(t *testing.T) {
	t.Setenv("DB_ADDR", "postgres://localhost:5432/dashboard")
	t.Setenv("ENV", "prod")
	t.Setenv("SECURE_COOKIES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.SecureCookies {
		t.Fatal("prod env must default to secure cookies")
	}
}

func TestLoad_InvalidDuration_Fails(t *testing.T) {
	t.Setenv("DB_ADDR", "postgres://localhost:5432/dashboard")
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid duration")
	}
}
