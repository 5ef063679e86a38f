package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "CLERK_JWT_TEMPLATE", "NEXT_PUBLIC_CLERK_JWT_TEMPLATE", "CLERK_TEMPLATE", "NEXT_PUBLIC_CLERK_TEMPLATE",
		"DEV_ADMIN_BYPASS", "NEXT_PUBLIC_DEV_ADMIN_BYPASS", "DEV_ADMIN_TOKEN", "NEXT_PUBLIC_DEV_ADMIN_TOKEN", "KAFKA_BROKER",
		"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "CORS_ALLOWED_ORIGINS", "BACKEND_TIMEOUT_SECONDS", "AWS_REGION", "WIZARD_DRAFTS_TABLE"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if len(cfg.Identity.Templates) != 0 {
		t.Fatalf("expected no templates, got %v", cfg.Identity.Templates)
	}
	if cfg.Identity.DevAdminEnabled {
		t.Fatalf("expected sandbox admin disabled by default")
	}
	if cfg.Identity.DevAdminToken != DefaultDevAdminToken {
		t.Fatalf("unexpected sandbox token %q", cfg.Identity.DevAdminToken)
	}
	if cfg.Payments.MockMode {
		t.Fatalf("expected mock mode off")
	}
	if cfg.Backend.Timeout != 15*time.Second {
		t.Fatalf("expected 15s backend timeout, got %v", cfg.Backend.Timeout)
	}
	if cfg.Dynamo.Region != "us-east-1" || cfg.Dynamo.DraftsTable != "wizard_drafts" {
		t.Fatalf("unexpected dynamo defaults %+v", cfg.Dynamo)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Fatalf("expected two default origins, got %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoad_TemplatesAndToggles(t *testing.T) {
	t.Setenv("CLERK_JWT_TEMPLATE", "backend")
	t.Setenv("NEXT_PUBLIC_CLERK_JWT_TEMPLATE", "portal")
	t.Setenv("CLERK_TEMPLATE", "backend")
	t.Setenv("NEXT_PUBLIC_CLERK_TEMPLATE", "")
	t.Setenv("DEV_ADMIN_BYPASS", "yes")
	t.Setenv("PORT", "9090")
	t.Setenv("MERCADOPAGO_MOCK", "mock")

	cfg := Load()
	if len(cfg.Identity.Templates) != 2 || cfg.Identity.Templates[0] != "backend" || cfg.Identity.Templates[1] != "portal" {
		t.Fatalf("unexpected templates %v", cfg.Identity.Templates)
	}
	if !cfg.Identity.DevAdminEnabled {
		t.Fatalf("expected sandbox admin enabled")
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Server.Port)
	}
	if !cfg.Payments.MockMode {
		t.Fatalf("expected mock mode on")
	}
}
