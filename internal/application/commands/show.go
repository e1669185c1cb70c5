package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"devotional/internal/application"
	"devotional/internal/domain"
	"devotional/internal/ports"
)

// ShowResult contains one archived devotional
type ShowResult struct {
	Date       string
	Path       string
	Raw        []byte
	Devotional *domain.Devotional // nil if the file is not in generator format
}

// ShowDevotionalCommand reads the devotional for a given date
type ShowDevotionalCommand struct {
	library ports.ContentLibrary
	Date    string
}

// NewShowDevotionalCommand creates a new ShowDevotionalCommand
func NewShowDevotionalCommand(library ports.ContentLibrary, date string) *ShowDevotionalCommand {
	return &ShowDevotionalCommand{
		library: library,
		Date:    date,
	}
}

// Validate checks the requested date
func (c *ShowDevotionalCommand) Validate() error {
	return application.ValidateDate("date", c.Date)
}

// Execute reads and decodes the artifact
func (c *ShowDevotionalCommand) Execute(ctx context.Context) (*ShowResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	name := c.Date + ".json"
	data, err := c.library.ReadContentFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("devotional for %s: %w", c.Date, application.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read devotional: %w", err)
	}

	result := &ShowResult{
		Date: c.Date,
		Path: c.library.ContentPath(name),
		Raw:  data,
	}
	// Upstream-authored files may not follow the generator schema
	if d, err := domain.ParseDevotional(data); err == nil && d.Content != "" {
		result.Devotional = d
	}
	return result, nil
}

// LatestCommand returns the tracker manifest, building it in memory when
// the tracker file has not been written yet
type LatestCommand struct {
	tracker ports.TrackerStore
	index   *IndexCommand
}

// NewLatestCommand creates a new LatestCommand
func NewLatestCommand(library ports.ContentLibrary, tracker ports.TrackerStore) *LatestCommand {
	return &LatestCommand{
		tracker: tracker,
		index:   NewIndexCommand(library, tracker, nil),
	}
}

// Execute returns the current manifest
func (c *LatestCommand) Execute(ctx context.Context) (*domain.Manifest, error) {
	m, err := c.tracker.ReadManifest()
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read tracker: %w", err)
	}

	result, err := c.index.Build(ctx)
	if err != nil {
		return nil, err
	}
	return &result.Manifest, nil
}
