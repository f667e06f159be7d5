package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "")
	t.Setenv("RECOGNITION_THRESHOLD", "")
	t.Setenv("QA_EMBEDDING_DIM", "")

	cfg := Load()

	if cfg.Database.MaxOpenConns != 25 {
		t.Errorf("expected default MaxOpenConns 25, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns != 5 {
		t.Errorf("expected default MaxIdleConns 5, got %d", cfg.Database.MaxIdleConns)
	}
	if cfg.Recognition.Threshold != 0.7 {
		t.Errorf("expected default threshold 0.7, got %f", cfg.Recognition.Threshold)
	}
	if cfg.QA.EmbeddingDim != 768 {
		t.Errorf("expected default embedding dim 768, got %d", cfg.QA.EmbeddingDim)
	}
	if cfg.QA.RetrievalSize != 4 {
		t.Errorf("expected default retrieval size 4, got %d", cfg.QA.RetrievalSize)
	}
	if cfg.Web.Port != 8080 {
		t.Errorf("expected default web port 8080, got %d", cfg.Web.Port)
	}
	if cfg.Web.Host != "0.0.0.0" {
		t.Errorf("expected default web host 0.0.0.0, got %q", cfg.Web.Host)
	}
}

func TestLoad_WebOverrides(t *testing.T) {
	t.Setenv("WEB_PORT", "9090")
	t.Setenv("WEB_HOST", "127.0.0.1")

	cfg := Load()

	if cfg.Web.Port != 9090 {
		t.Errorf("expected web port 9090, got %d", cfg.Web.Port)
	}
	if cfg.Web.Host != "127.0.0.1" {
		t.Errorf("expected web host 127.0.0.1, got %q", cfg.Web.Host)
	}
}

func TestLoad_WebPortInvalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "eighty"},
		{"negative", "-1"},
		{"zero", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("WEB_PORT", tc.value)
			if cfg := Load(); cfg.Web.Port != 8080 {
				t.Errorf("expected invalid WEB_PORT %q to fall back to 8080, got %d", tc.value, cfg.Web.Port)
			}
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RECOGNITION_THRESHOLD", "0.55")
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "10")

	cfg := Load()

	if cfg.Recognition.Threshold != 0.55 {
		t.Errorf("expected threshold 0.55, got %f", cfg.Recognition.Threshold)
	}
	if cfg.Database.MaxOpenConns != 10 {
		t.Errorf("expected MaxOpenConns 10, got %d", cfg.Database.MaxOpenConns)
	}
}

func TestEnvFloat_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"not a number", "abc"},
		{"negative", "-0.5"},
		{"zero", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("RECOGNITION_THRESHOLD", tc.value)
			if got := envFloat("RECOGNITION_THRESHOLD", 0.7); got != 0.7 {
				t.Errorf("envFloat(%q) = %f; want default 0.7", tc.value, got)
			}
		})
	}
}
