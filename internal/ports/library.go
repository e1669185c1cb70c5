package ports

import "devotional/internal/domain"

// DevotionalWriter persists generated artifacts
type DevotionalWriter interface {
	// SaveDevotional writes the artifact for d.Date, replacing any existing
	// file for that date, and returns the written path
	SaveDevotional(d *domain.Devotional) (string, error)
}

// ContentLibrary reads the directory of dated artifacts
type ContentLibrary interface {
	// ContentExists reports whether the content directory exists
	ContentExists() (bool, error)

	// ListDatedFiles returns YYYY-MM-DD.json names in lexical order
	ListDatedFiles() ([]string, error)

	// ReadContentFile returns the raw bytes of one artifact
	ReadContentFile(name string) ([]byte, error)

	// ContentPath returns the filesystem path of one artifact
	ContentPath(name string) string
}

// TrackerStore reads and writes the tracker manifest
type TrackerStore interface {
	WriteManifest(m domain.Manifest) error
	ReadManifest() (*domain.Manifest, error)
	TrackerPath() string
}

// Archive is the full storage surface used by the long-running adapters
type Archive interface {
	DevotionalWriter
	ContentLibrary
	TrackerStore
}
