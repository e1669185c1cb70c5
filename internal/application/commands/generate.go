package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"devotional/internal/application"
	"devotional/internal/domain"
	"devotional/internal/ports"
)

// ProviderAttempt records the outcome of one provider call
type ProviderAttempt struct {
	Provider string
	Model    string
	Err      error
}

// GenerateResult contains the result of generating today's devotional
type GenerateResult struct {
	Devotional *domain.Devotional
	Path       string
	Attempts   []ProviderAttempt
	Message    string
}

// GenerateCommand produces one devotional for the current date, trying
// providers in order until one returns text
type GenerateCommand struct {
	providers []ports.Provider
	writer    ports.DevotionalWriter
	logger    *slog.Logger

	App    string
	Prompt string
	Now    func() time.Time
	NewID  func() string
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(providers []ports.Provider, writer ports.DevotionalWriter, app string, logger *slog.Logger) *GenerateCommand {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &GenerateCommand{
		providers: providers,
		writer:    writer,
		logger:    logger,
		App:       app,
		Prompt:    domain.DevotionalPrompt,
		Now:       time.Now,
		NewID:     uuid.NewString,
	}
}

// ProviderNames returns the provider names in the order they are tried
func (c *GenerateCommand) ProviderNames() []string {
	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return names
}

// Validate checks if the generate operation can run
func (c *GenerateCommand) Validate() error {
	if len(c.providers) == 0 {
		return &application.ValidationError{
			Field:   "providers",
			Message: "at least one provider is required",
		}
	}
	if c.writer == nil {
		return &application.ValidationError{
			Field:   "outputDir",
			Message: "no devotional writer configured",
		}
	}
	return application.ValidateRequired("app", c.App)
}

// Execute runs the provider fallback loop and writes the first success
func (c *GenerateCommand) Execute(ctx context.Context) (*GenerateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	now := c.Now()
	date := domain.DateOf(now)
	req := ports.CompletionRequest{
		SystemPrompt: c.Prompt,
		Temperature:  domain.Temperature,
		MaxTokens:    domain.MaxTokens,
	}

	var attempts []ProviderAttempt
	var failures []*application.ProviderError

	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c.logger.Info("generating devotional", "provider", p.Name(), "model", p.Model())

		content, err := p.Complete(ctx, req)
		if err == nil && strings.TrimSpace(content) == "" {
			err = errors.New("empty completion")
		}
		attempts = append(attempts, ProviderAttempt{Provider: p.Name(), Model: p.Model(), Err: err})

		if err != nil {
			c.logger.Warn("provider failed", "provider", p.Name(), "error", err)
			failures = append(failures, &application.ProviderError{Provider: p.Name(), Err: err})
			continue
		}

		devotional := &domain.Devotional{
			ID:          c.NewID(),
			App:         c.App,
			Date:        date,
			Title:       domain.TitleFromMarkdown(content),
			Provider:    p.Name(),
			Model:       p.Model(),
			MaxTokens:   domain.MaxTokens,
			Temperature: domain.Temperature,
			Words:       domain.WordCount(content),
			Content:     content,
			CreatedAt:   now.UTC().Format(time.RFC3339),
			Version:     domain.SchemaVersion,
		}

		path, err := c.writer.SaveDevotional(devotional)
		if err != nil {
			return nil, fmt.Errorf("failed to save devotional: %w", err)
		}

		c.logger.Info("devotional saved", "provider", p.Name(), "path", path, "words", devotional.Words)

		return &GenerateResult{
			Devotional: devotional,
			Path:       path,
			Attempts:   attempts,
			Message:    fmt.Sprintf("Success with %s! Saved to %s", p.Name(), path),
		}, nil
	}

	c.logger.Error("all providers failed, no devotional generated", "date", date, "attempts", len(attempts))
	return nil, &application.ExhaustedError{Failures: failures}
}
