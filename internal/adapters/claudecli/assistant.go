package claudecli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"devotional/internal/ports"
)

// Assistant implements ports.Provider using the Claude Code CLI
type Assistant struct {
	model  string
	binary string
}

// Ensure Assistant implements Provider
var _ ports.Provider = (*Assistant)(nil)

// Option configures the Assistant
type Option func(*Assistant)

// WithModel sets the Claude model to use
func WithModel(model string) Option {
	return func(a *Assistant) {
		if model != "" {
			a.model = model
		}
	}
}

// WithBinary sets the CLI executable (default "claude")
func WithBinary(binary string) Option {
	return func(a *Assistant) {
		if binary != "" {
			a.binary = binary
		}
	}
}

// NewAssistant creates a new Claude CLI provider
func NewAssistant(opts ...Option) *Assistant {
	a := &Assistant{
		model:  "haiku", // Default to haiku for speed
		binary: "claude",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the provider identifier
func (a *Assistant) Name() string {
	return "claude"
}

// Model returns the Claude model alias
func (a *Assistant) Model() string {
	return a.model
}

// claudeResponse represents the JSON output from claude CLI
type claudeResponse struct {
	Type         string  `json:"type"`
	Subtype      string  `json:"subtype"`
	DurationMS   int     `json:"duration_ms"`
	IsError      bool    `json:"is_error"`
	NumTurns     int     `json:"num_turns"`
	Result       string  `json:"result"`
	SessionID    string  `json:"session_id"`
	TotalCostUSD float64 `json:"total_cost_usd"`
}

// Complete runs the CLI in print mode with the system prompt as the prompt.
// The CLI does not expose temperature or token limits, so those are not sent.
func (a *Assistant) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	if !a.IsAvailable() {
		return "", fmt.Errorf("%s CLI not found in PATH", a.binary)
	}

	args := []string{
		"-p", req.SystemPrompt,
		"--output-format", "json",
		"--model", a.model,
	}

	cmd := exec.CommandContext(ctx, a.binary, args...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("claude CLI error: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("claude CLI error: %w", err)
	}

	return parseResult(output)
}

// parseResult extracts the generated markdown from the CLI's JSON envelope
func parseResult(output []byte) (string, error) {
	var response claudeResponse
	if err := json.Unmarshal(output, &response); err != nil {
		return "", fmt.Errorf("failed to parse claude response: %w", err)
	}

	if response.IsError {
		return "", fmt.Errorf("claude returned an error: %s", response.Result)
	}

	result := stripCodeFence(response.Result)
	if result == "" {
		return "", fmt.Errorf("claude returned an empty result")
	}
	return result, nil
}

var codeFenceRe = regexp.MustCompile("(?s)^```(?:markdown|md)?\\s*\\n(.*?)\\n?```$")

// stripCodeFence unwraps a response that was returned inside a single markdown code block
func stripCodeFence(result string) string {
	result = strings.TrimSpace(result)
	if matches := codeFenceRe.FindStringSubmatch(result); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	return result
}

// IsAvailable checks if the claude CLI is installed and accessible
func (a *Assistant) IsAvailable() bool {
	_, err := exec.LookPath(a.binary)
	return err == nil
}
