package bootstrap

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"devotional/internal/config"
)

func TestProviders_FixedOrder(t *testing.T) {
	cfg := &config.Config{
		RequestTimeout: time.Second,
		OpenAI:         config.ProviderConfig{Model: "gpt-4o"},
	}

	providers := Providers(cfg)
	want := []struct{ name, model string }{
		{"groq", "llama-3.1-8b-instant"},
		{"openai", "gpt-4o"},
		{"deepseek", "deepseek-chat"},
	}

	if len(providers) != len(want) {
		t.Fatalf("got %d providers, want %d", len(providers), len(want))
	}
	for i, w := range want {
		if providers[i].Name() != w.name || providers[i].Model() != w.model {
			t.Errorf("providers[%d] = %s/%s, want %s/%s", i, providers[i].Name(), providers[i].Model(), w.name, w.model)
		}
	}
}

func TestProviders_ClaudeCLIIsLast(t *testing.T) {
	providers := Providers(&config.Config{ClaudeCLI: true, ClaudeModel: "sonnet"})

	if len(providers) != 4 {
		t.Fatalf("got %d providers, want 4", len(providers))
	}
	last := providers[3]
	if last.Name() != "claude" || last.Model() != "sonnet" {
		t.Errorf("last provider = %s/%s", last.Name(), last.Model())
	}
}

func TestLogger_Verbosity(t *testing.T) {
	var buf bytes.Buffer

	Logger(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug output without verbose: %s", buf.String())
	}

	Logger(&buf, true).Debug("shown", "file", "2025-01-01.json")
	if !strings.Contains(buf.String(), "file=2025-01-01.json") {
		t.Errorf("expected debug line, got %q", buf.String())
	}
}
