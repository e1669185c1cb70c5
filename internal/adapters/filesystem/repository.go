package filesystem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"devotional/internal/domain"
	"devotional/internal/ports"
)

// Repository implements the devotional writer, content library and tracker
// store on top of plain files
type Repository struct {
	outputDir   string
	contentDir  string
	trackerPath string
}

// Ensure Repository implements the storage ports
var (
	_ ports.DevotionalWriter = (*Repository)(nil)
	_ ports.ContentLibrary   = (*Repository)(nil)
	_ ports.TrackerStore     = (*Repository)(nil)
	_ ports.Archive          = (*Repository)(nil)
)

// NewRepository creates a new filesystem repository
func NewRepository(outputDir, contentDir, trackerPath string) *Repository {
	return &Repository{
		outputDir:   expandHome(outputDir),
		contentDir:  expandHome(contentDir),
		trackerPath: expandHome(trackerPath),
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}

// OutputDir returns the directory generated devotionals are written to
func (r *Repository) OutputDir() string {
	return r.outputDir
}

// ContentDir returns the directory the tracker is built from
func (r *Repository) ContentDir() string {
	return r.contentDir
}

// TrackerPath returns the manifest file path
func (r *Repository) TrackerPath() string {
	return r.trackerPath
}

// SaveDevotional writes outputDir/<date>.json, replacing any file for that date
func (r *Repository) SaveDevotional(d *domain.Devotional) (string, error) {
	if !domain.IsDatedFileName(d.FileName()) {
		return "", fmt.Errorf("invalid devotional date: %q", d.Date)
	}

	path := filepath.Join(r.outputDir, d.FileName())
	if err := writeJSON(path, d); err != nil {
		return "", err
	}
	return path, nil
}

// ContentExists reports whether the content directory exists
func (r *Repository) ContentExists() (bool, error) {
	info, err := os.Stat(r.contentDir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat content directory: %w", err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("content path is not a directory: %s", r.contentDir)
	}
	return true, nil
}

// ListDatedFiles returns the YYYY-MM-DD.json entries of the content directory,
// sorted lexically (which is chronological for this fixed-width pattern)
func (r *Repository) ListDatedFiles() ([]string, error) {
	entries, err := os.ReadDir(r.contentDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read content directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !domain.IsDatedFileName(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}

// ReadContentFile returns the raw bytes of one artifact
func (r *Repository) ReadContentFile(name string) ([]byte, error) {
	if name != filepath.Base(name) {
		return nil, fmt.Errorf("invalid file name: %q", name)
	}
	return os.ReadFile(r.ContentPath(name))
}

// ContentPath returns the path of one artifact in the content directory
func (r *Repository) ContentPath(name string) string {
	return filepath.Join(r.contentDir, name)
}

// WriteManifest overwrites the tracker file
func (r *Repository) WriteManifest(m domain.Manifest) error {
	if m.Files == nil {
		m.Files = []domain.Record{}
	}
	return writeJSON(r.trackerPath, m)
}

// ReadManifest loads the tracker file. A missing tracker returns an error
// matching fs.ErrNotExist.
func (r *Repository) ReadManifest() (*domain.Manifest, error) {
	data, err := os.ReadFile(r.trackerPath)
	if err != nil {
		return nil, err
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse tracker %s: %w", r.trackerPath, err)
	}
	if m.Files == nil {
		m.Files = []domain.Record{}
	}
	return &m, nil
}

// writeJSON encodes v with two-space indentation, leaving markdown
// characters like & and < unescaped
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return writeFileAtomic(path, buf.Bytes())
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place, creating the directory if needed
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".devotional-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to chmod %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
