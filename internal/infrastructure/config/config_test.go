package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, env := range envBindings {
		t.Setenv(env, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Store.Backend != StoreBackendMemory || cfg.UsesDynamoDB() {
		t.Fatalf("expected memory backend, got %q", cfg.Store.Backend)
	}
	if cfg.Auth.SessionTTL != 8*time.Hour {
		t.Fatalf("expected 8h ttl, got %s", cfg.Auth.SessionTTL)
	}
	if cfg.DynamoDB.EstimationTable != "estimations" {
		t.Fatalf("unexpected table: %q", cfg.DynamoDB.EstimationTable)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_BACKEND", "dynamodb")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("ESTIMATIONS_TABLE", "budget-estimations")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("expected 9090, got %d", cfg.Server.Port)
	}
	if !cfg.UsesDynamoDB() {
		t.Fatalf("expected dynamodb backend")
	}
	if cfg.Auth.SessionTTL != 30*time.Minute {
		t.Fatalf("expected 30m, got %s", cfg.Auth.SessionTTL)
	}
	if cfg.DynamoDB.EstimationTable != "budget-estimations" || cfg.DynamoDB.Endpoint != "http://localhost:8000" {
		t.Fatalf("unexpected dynamodb config: %+v", cfg.DynamoDB)
	}
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")
	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error")
	}
}
