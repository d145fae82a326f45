package config

import (
	"context"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Session.Backend != SessionBackendFile {
		t.Fatalf("expected file backend by default, got %s", cfg.Session.Backend)
	}
	if cfg.Session.FilePath != ".timetracker/session.json" {
		t.Fatalf("unexpected default session file: %s", cfg.Session.FilePath)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected default redis addr: %s", cfg.Redis.Addr)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.Session.Backend != SessionBackendRedis {
		t.Fatalf("expected redis backend, got %s", cfg.Session.Backend)
	}
	if cfg.Redis.Addr != "redis.internal:6379" {
		t.Fatalf("unexpected redis addr: %s", cfg.Redis.Addr)
	}
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "mongo")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected an error for an unknown session backend")
	}
}
