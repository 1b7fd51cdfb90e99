package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("SESSION_STORE", "")
	t.Setenv("UPLOAD_MAX_BYTES", "")
	t.Setenv("IMAGE_MAX_PIXELS", "")

	cfg := Load()

	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Fatalf("unexpected api base url: %s", cfg.APIBaseURL)
	}
	if cfg.SessionStore != SessionStoreCookie {
		t.Fatalf("expected cookie store, got %s", cfg.SessionStore)
	}
	if cfg.UploadMaxBytes != 25*1024*1024 {
		t.Fatalf("expected 25MB upload cap, got %d", cfg.UploadMaxBytes)
	}
	if cfg.ImageMaxPixels != 40_000_000 {
		t.Fatalf("expected 40MP pixel cap, got %d", cfg.ImageMaxPixels)
	}
	if cfg.Addr() != ":"+cfg.ServerPort {
		t.Fatalf("unexpected addr %s", cfg.Addr())
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("SESSION_STORE", "Redis")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("OTEL_SAMPLING_RATIO", "7")

	cfg := Load()

	if cfg.APIBaseURL != "https://api.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 3*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.APITimeout)
	}
	if cfg.SessionStore != SessionStoreRedis {
		t.Fatalf("expected redis store, got %s", cfg.SessionStore)
	}
	if !cfg.SecureCookies {
		t.Fatalf("expected secure cookies")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.OTELSampleRatio != 1 {
		t.Fatalf("out of range ratio should fall back to 1, got %v", cfg.OTELSampleRatio)
	}
}
