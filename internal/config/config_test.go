package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %s", cfg.Host)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("expected default model gpt-4o-mini, got %s", cfg.OpenAIModel)
	}
	if cfg.OpenAIMaxTokens != 400 {
		t.Errorf("expected default max tokens 400, got %d", cfg.OpenAIMaxTokens)
	}
	if cfg.BriefTimeout != 30*time.Second {
		t.Errorf("expected default brief timeout 30s, got %s", cfg.BriefTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("OPENAI_MAX_TOKENS", "800")
	t.Setenv("OPENAI_STUB", "true")
	t.Setenv("FEED_TIMEOUT", "5s")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.OpenAIModel != "gpt-4o" {
		t.Errorf("expected model gpt-4o, got %s", cfg.OpenAIModel)
	}
	if cfg.OpenAIMaxTokens != 800 {
		t.Errorf("expected max tokens 800, got %d", cfg.OpenAIMaxTokens)
	}
	if !cfg.OpenAIStub {
		t.Error("expected stub mode enabled")
	}
	if cfg.FeedTimeout != 5*time.Second {
		t.Errorf("expected feed timeout 5s, got %s", cfg.FeedTimeout)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("OPENAI_MAX_TOKENS", "not-a-number")
	t.Setenv("FEED_TIMEOUT", "soon")
	t.Setenv("OPENAI_STUB", "maybe")

	cfg := Load()

	if cfg.OpenAIMaxTokens != 400 {
		t.Errorf("expected fallback max tokens 400, got %d", cfg.OpenAIMaxTokens)
	}
	if cfg.FeedTimeout != 10*time.Second {
		t.Errorf("expected fallback feed timeout 10s, got %s", cfg.FeedTimeout)
	}
	if cfg.OpenAIStub {
		t.Error("expected stub mode disabled for unparseable value")
	}
}
