package mcp

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"devotional/internal/domain"
)

func TestFormatRecord(t *testing.T) {
	tests := []struct {
		name   string
		record domain.Record
		want   string
	}{
		{
			name:   "with title",
			record: domain.Record{File: "2025-10-13.json", Title: json.RawMessage(`"Stand Firm"`)},
			want:   "2025-10-13.json  Stand Firm",
		},
		{
			name:   "null title",
			record: domain.Record{File: "2025-10-12.json", Title: json.RawMessage(`null`)},
			want:   "2025-10-12.json",
		},
		{
			name:   "no title",
			record: domain.Record{File: "2025-10-11.json"},
			want:   "2025-10-11.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRecord(tt.record); got != tt.want {
				t.Errorf("formatRecord() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatEntities(t *testing.T) {
	result, err := formatEntities([]domain.Record{
		{File: "2025-10-12.json"},
		{File: "2025-10-13.json", Title: json.RawMessage(`"Rise"`)},
	}, formatRecord)
	if err != nil {
		t.Fatal(err)
	}

	text := result.Content[0].(mcp.TextContent).Text
	if text != "2025-10-12.json\n2025-10-13.json  Rise\n" {
		t.Errorf("text = %q", text)
	}

	empty, _ := formatEntities([]domain.Record{}, formatRecord)
	if got := empty.Content[0].(mcp.TextContent).Text; got != "No results." {
		t.Errorf("empty text = %q", got)
	}
}

func TestToolError(t *testing.T) {
	result, err := toolError(errors.New("all providers failed"))
	if err != nil {
		t.Fatalf("toolError should not return a Go error: %v", err)
	}
	if !result.IsError {
		t.Error("expected IsError")
	}
}
