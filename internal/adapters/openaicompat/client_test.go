package openaicompat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devotional/internal/ports"
)

var testRequest = ports.CompletionRequest{
	SystemPrompt: "write a devotional",
	Temperature:  0.7,
	MaxTokens:    500,
}

func TestComplete_Success(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotReq); err != nil {
			t.Errorf("request is not JSON: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"# Rise\nbody"}}]}`)
	}))
	defer srv.Close()

	c := NewGroq("secret", WithBaseURL(srv.URL))
	got, err := c.Complete(context.Background(), testRequest)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if got != "# Rise\nbody" {
		t.Errorf("content = %q", got)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.Model != GroqModel {
		t.Errorf("model = %s", gotReq.Model)
	}
	if gotReq.Temperature != 0.7 || gotReq.MaxTokens != 500 {
		t.Errorf("parameters = %v/%d", gotReq.Temperature, gotReq.MaxTokens)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "system" || gotReq.Messages[0].Content != "write a devotional" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
}

func TestComplete_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "API error with message",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`,
			wantErr: "openai API error (401): Invalid API Key",
		},
		{
			name:    "server error with plain body",
			status:  http.StatusBadGateway,
			body:    `upstream down`,
			wantErr: "openai API error (502): upstream down",
		},
		{
			name:    "invalid JSON",
			status:  http.StatusOK,
			body:    `<html>`,
			wantErr: "malformed response",
		},
		{
			name:    "no choices",
			status:  http.StatusOK,
			body:    `{"choices":[]}`,
			wantErr: "no message content",
		},
		{
			name:    "null content",
			status:  http.StatusOK,
			body:    `{"choices":[{"message":{"content":null}}]}`,
			wantErr: "no message content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			c := NewOpenAI("key", WithBaseURL(srv.URL))
			_, err := c.Complete(context.Background(), testRequest)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestComplete_MissingKeySkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewDeepSeek("", WithBaseURL(srv.URL))
	_, err := c.Complete(context.Background(), testRequest)
	if err == nil || err.Error() != "DEEPSEEK_API_KEY not set" {
		t.Errorf("error = %v, want DEEPSEEK_API_KEY not set", err)
	}
	if called {
		t.Error("no request should be sent without a credential")
	}
}

func TestComplete_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewGroq("key", WithBaseURL(url))
	if _, err := c.Complete(context.Background(), testRequest); err == nil || !strings.Contains(err.Error(), "HTTP request failed") {
		t.Errorf("expected transport error, got %v", err)
	}
}

func TestProviderDefaults(t *testing.T) {
	tests := []struct {
		client *Client
		name   string
		model  string
		url    string
	}{
		{NewGroq("k"), "groq", GroqModel, GroqURL},
		{NewOpenAI("k"), "openai", OpenAIModel, OpenAIURL},
		{NewDeepSeek("k"), "deepseek", DeepSeekModel, DeepSeekURL},
		{NewOpenAI("k", WithModel("gpt-4o")), "openai", "gpt-4o", OpenAIURL},
		{NewGroq("k", WithModel("")), "groq", GroqModel, GroqURL},
	}

	for _, tt := range tests {
		if tt.client.Name() != tt.name || tt.client.Model() != tt.model || tt.client.baseURL != tt.url {
			t.Errorf("got %s/%s/%s, want %s/%s/%s",
				tt.client.Name(), tt.client.Model(), tt.client.baseURL, tt.name, tt.model, tt.url)
		}
	}
}
