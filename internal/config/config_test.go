package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("HUBSPOT_BASE_URL", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.HubSpotBaseURL != "https://api.hubapi.com" {
		t.Fatalf("expected default hubspot base url, got %s", cfg.HubSpotBaseURL)
	}
	if cfg.DispatchWorkerCount != 4 {
		t.Fatalf("expected default worker count, got %d", cfg.DispatchWorkerCount)
	}
	if cfg.DispatchJobTimeout != 15*time.Second {
		t.Fatalf("expected default job timeout, got %s", cfg.DispatchJobTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://vip.example.com, https://www.example.com")
	t.Setenv("DISPATCH_WORKER_COUNT", "8")
	t.Setenv("DISPATCH_JOB_TIMEOUT", "30s")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[0] != "https://vip.example.com" {
		t.Fatalf("expected parsed origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.DispatchWorkerCount != 8 {
		t.Fatalf("expected worker count override, got %d", cfg.DispatchWorkerCount)
	}
	if cfg.DispatchJobTimeout != 30*time.Second {
		t.Fatalf("expected job timeout override, got %s", cfg.DispatchJobTimeout)
	}
}

func TestIntegrationPredicates(t *testing.T) {
	t.Setenv("SLACK_WEBHOOK_URL", "")
	t.Setenv("HUBSPOT_ACCESS_TOKEN", "")
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	t.Setenv("TWILIO_FROM_NUMBER", "")
	cfg := Load()
	if cfg.SlackConfigured() || cfg.HubSpotConfigured() || cfg.TwilioConfigured() {
		t.Fatal("expected all integrations unconfigured")
	}

	t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.slack.com/services/T/B/x")
	t.Setenv("HUBSPOT_ACCESS_TOKEN", "pat-na1-abc")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	t.Setenv("TWILIO_FROM_NUMBER", "+15550001111")
	cfg = Load()
	if !cfg.SlackConfigured() || !cfg.HubSpotConfigured() || !cfg.TwilioConfigured() {
		t.Fatal("expected all integrations configured")
	}
}

func TestPlaceholderValuesTreatedAsUnset(t *testing.T) {
	t.Setenv("SLACK_WEBHOOK_URL", "YOUR_SLACK_WEBHOOK_URL_HERE")
	t.Setenv("HUBSPOT_ACCESS_TOKEN", "YOUR_HUBSPOT_ACCESS_TOKEN_HERE")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	t.Setenv("TWILIO_FROM_NUMBER", "YOUR_TWILIO_FROM_NUMBER_HERE")
	cfg := Load()
	if cfg.SlackConfigured() {
		t.Fatal("placeholder slack webhook should be unconfigured")
	}
	if cfg.HubSpotConfigured() {
		t.Fatal("placeholder hubspot token should be unconfigured")
	}
	if cfg.TwilioConfigured() {
		t.Fatal("twilio with placeholder from number should be unconfigured")
	}
}
