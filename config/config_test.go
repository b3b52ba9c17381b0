package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaultsAndEnvOverride(t *testing.T) {
	t.Setenv("DOCASSIST_SERVER_ADDRESS", ":9999")
	t.Setenv("DOCASSIST_SEARCH_APP_ID", "test-app")
	t.Setenv("DOCASSIST_SEARCH_API_KEY", "test-key")

	cfg := LoadConfig("")

	if cfg.Server.Address != ":9999" {
		t.Fatalf("env override not applied, got %q", cfg.Server.Address)
	}
	if cfg.LLM.ServerURL != "http://localhost:8080" {
		t.Fatalf("unexpected llm default: %q", cfg.LLM.ServerURL)
	}
	if cfg.LLM.Model != "mistral-7b-local" {
		t.Fatalf("unexpected model default: %q", cfg.LLM.Model)
	}
	if cfg.LLM.Temperature != 0.7 || cfg.LLM.TopP != 0.9 || cfg.LLM.MaxTokens != 512 {
		t.Fatalf("unexpected generation defaults: %+v", cfg.LLM)
	}
	if cfg.LLM.CtxSize != 4096 {
		t.Fatalf("unexpected ctx_size default: %d", cfg.LLM.CtxSize)
	}
	if cfg.LLM.Timeout != 120*time.Second {
		t.Fatalf("unexpected timeout default: %v", cfg.LLM.Timeout)
	}
	if cfg.Search.IndexName != "iqm_docs" {
		t.Fatalf("unexpected index default: %q", cfg.Search.IndexName)
	}
	if !cfg.Search.Enabled() {
		t.Fatal("search credentials from env should enable search")
	}
}

func TestSearchConfigEnabled(t *testing.T) {
	if (SearchConfig{}).Enabled() {
		t.Fatal("empty credentials must disable search")
	}
	if (SearchConfig{AppID: "a"}).Enabled() {
		t.Fatal("key required")
	}
	if !(SearchConfig{AppID: "a", APIKey: "k"}).Enabled() {
		t.Fatal("both set must enable search")
	}
}
