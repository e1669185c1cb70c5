package openaicompat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"devotional/internal/ports"
)

// Endpoints and default models for the built-in providers
const (
	GroqURL     = "https://api.groq.com/openai/v1/chat/completions"
	OpenAIURL   = "https://api.openai.com/v1/chat/completions"
	DeepSeekURL = "https://api.deepseek.com/v1/chat/completions"

	GroqModel     = "llama-3.1-8b-instant"
	OpenAIModel   = "gpt-4o-mini"
	DeepSeekModel = "deepseek-chat"
)

// Client implements ports.Provider for any OpenAI-compatible chat completions API
type Client struct {
	name    string
	model   string
	apiKey  string
	keyEnv  string
	baseURL string
	client  *http.Client
}

// Ensure Client implements Provider
var _ ports.Provider = (*Client)(nil)

// Option configures the Client
type Option func(*Client)

// WithModel overrides the default model
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL overrides the completions endpoint
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout bounds each request
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client = &http.Client{Timeout: d}
		}
	}
}

// NewClient creates a client. keyEnv names the credential in error messages.
func NewClient(name, baseURL, model, apiKey, keyEnv string, opts ...Option) *Client {
	c := &Client{
		name:    name,
		model:   model,
		apiKey:  apiKey,
		keyEnv:  keyEnv,
		baseURL: baseURL,
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewGroq creates the Groq provider
func NewGroq(apiKey string, opts ...Option) *Client {
	return NewClient("groq", GroqURL, GroqModel, apiKey, "GROQ_API_KEY", opts...)
}

// NewOpenAI creates the OpenAI provider
func NewOpenAI(apiKey string, opts ...Option) *Client {
	return NewClient("openai", OpenAIURL, OpenAIModel, apiKey, "OPENAI_API_KEY", opts...)
}

// NewDeepSeek creates the DeepSeek provider
func NewDeepSeek(apiKey string, opts ...Option) *Client {
	return NewClient("deepseek", DeepSeekURL, DeepSeekModel, apiKey, "DEEPSEEK_API_KEY", opts...)
}

// Name returns the provider identifier
func (c *Client) Name() string {
	return c.name
}

// Model returns the model identifier
func (c *Client) Model() string {
	return c.model
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends one chat completion request. There is no retry.
func (c *Client) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%s not set", c.keyEnv)
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "system", Content: req.SystemPrompt}},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e apiError
		if json.Unmarshal(respBody, &e) == nil && e.Error.Message != "" {
			return "", fmt.Errorf("%s API error (%d): %s", c.name, resp.StatusCode, e.Error.Message)
		}
		return "", fmt.Errorf("%s API error (%d): %s", c.name, resp.StatusCode, truncate(string(respBody), 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("malformed response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == nil {
		return "", fmt.Errorf("malformed response: no message content")
	}

	return *parsed.Choices[0].Message.Content, nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
