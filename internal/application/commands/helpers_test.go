package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"devotional/internal/adapters/filesystem"
	"devotional/internal/domain"
	"devotional/internal/ports"
)

// fakeProvider returns a canned completion or error and counts calls
type fakeProvider struct {
	name    string
	model   string
	content string
	err     error
	calls   int
	log     *[]string
	lastReq ports.CompletionRequest
}

func (p *fakeProvider) Name() string  { return p.name }
func (p *fakeProvider) Model() string { return p.model }

func (p *fakeProvider) Complete(_ context.Context, req ports.CompletionRequest) (string, error) {
	p.calls++
	p.lastReq = req
	if p.log != nil {
		*p.log = append(*p.log, p.name)
	}
	if p.err != nil {
		return "", p.err
	}
	return p.content, nil
}

func failing(name string, log *[]string) *fakeProvider {
	return &fakeProvider{name: name, model: name + "-model", err: errors.New(name + " unavailable"), log: log}
}

func succeeding(name, content string, log *[]string) *fakeProvider {
	return &fakeProvider{name: name, model: name + "-model", content: content, log: log}
}

// failingWriter simulates an output write failure
type failingWriter struct{}

func (failingWriter) SaveDevotional(*domain.Devotional) (string, error) {
	return "", errors.New("disk full")
}

func newTestRepo(t *testing.T) *filesystem.Repository {
	t.Helper()
	dir := t.TempDir()
	// Generator output and indexer input share one directory here
	content := filepath.Join(dir, "devotionals")
	return filesystem.NewRepository(content, content, filepath.Join(dir, "content_tracker.json"))
}

func writeArtifact(t *testing.T, repo *filesystem.Repository, name, content string) {
	t.Helper()
	if err := os.MkdirAll(repo.ContentDir(), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(repo.ContentPath(name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
