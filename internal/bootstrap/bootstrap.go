// Package bootstrap wires configuration into the adapters shared by every binary.
package bootstrap

import (
	"io"
	"log/slog"
	"os"

	"devotional/internal/adapters/claudecli"
	"devotional/internal/adapters/filesystem"
	"devotional/internal/adapters/openaicompat"
	"devotional/internal/config"
	"devotional/internal/ports"
)

// Providers returns the fixed fallback order: groq, openai, deepseek, then
// the claude CLI when enabled
func Providers(cfg *config.Config) []ports.Provider {
	providers := []ports.Provider{
		openaicompat.NewGroq(cfg.Groq.APIKey,
			openaicompat.WithModel(cfg.Groq.Model),
			openaicompat.WithTimeout(cfg.RequestTimeout)),
		openaicompat.NewOpenAI(cfg.OpenAI.APIKey,
			openaicompat.WithModel(cfg.OpenAI.Model),
			openaicompat.WithTimeout(cfg.RequestTimeout)),
		openaicompat.NewDeepSeek(cfg.DeepSeek.APIKey,
			openaicompat.WithModel(cfg.DeepSeek.Model),
			openaicompat.WithTimeout(cfg.RequestTimeout)),
	}

	if cfg.ClaudeCLI {
		providers = append(providers, claudecli.NewAssistant(claudecli.WithModel(cfg.ClaudeModel)))
	}
	return providers
}

// Repository returns the filesystem repository for the configured paths
func Repository(cfg *config.Config) *filesystem.Repository {
	return filesystem.NewRepository(cfg.OutputDir, cfg.ContentDir, cfg.TrackerPath)
}

// Logger returns a text logger on w; verbose enables debug output
func Logger(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
