package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"devotional/internal/domain"
	"devotional/internal/ports"
)

// IndexResult contains the result of rebuilding the tracker
type IndexResult struct {
	Manifest domain.Manifest
	Skipped  []string // dated files that could not be read or parsed
	Message  string

	empty bool // content directory does not exist
}

// IndexCommand rebuilds the tracker manifest from the content directory
type IndexCommand struct {
	library ports.ContentLibrary
	tracker ports.TrackerStore
	logger  *slog.Logger
}

// NewIndexCommand creates a new IndexCommand
func NewIndexCommand(library ports.ContentLibrary, tracker ports.TrackerStore, logger *slog.Logger) *IndexCommand {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &IndexCommand{
		library: library,
		tracker: tracker,
		logger:  logger,
	}
}

// Build scans the content directory and returns the manifest without writing it
func (c *IndexCommand) Build(ctx context.Context) (*IndexResult, error) {
	exists, err := c.library.ContentExists()
	if err != nil {
		return nil, fmt.Errorf("failed to check content directory: %w", err)
	}
	if !exists {
		return &IndexResult{
			Manifest: domain.EmptyManifest(),
			empty:    true,
		}, nil
	}

	names, err := c.library.ListDatedFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to list content directory: %w", err)
	}

	records := make([]domain.Record, 0, len(names))
	var skipped []string

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := c.library.ReadContentFile(name)
		if err != nil {
			skipped = append(skipped, name)
			c.logger.Debug("skipping unreadable devotional", "file", name, "error", err)
			continue
		}

		record, err := domain.ExtractRecord(name, data)
		if err != nil {
			skipped = append(skipped, name)
			c.logger.Debug("skipping unparseable devotional", "file", name, "error", err)
			continue
		}
		records = append(records, record)
	}

	manifest := domain.NewManifest(records)
	return &IndexResult{
		Manifest: manifest,
		Skipped:  skipped,
	}, nil
}

// Execute rebuilds the manifest and overwrites the tracker file
func (c *IndexCommand) Execute(ctx context.Context) (*IndexResult, error) {
	result, err := c.Build(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.tracker.WriteManifest(result.Manifest); err != nil {
		return nil, fmt.Errorf("failed to write tracker: %w", err)
	}

	if result.empty {
		result.Message = fmt.Sprintf("No devotionals yet; wrote empty tracker %s", c.tracker.TrackerPath())
	} else {
		result.Message = fmt.Sprintf("Updated %s: %d items", c.tracker.TrackerPath(), result.Manifest.Count)
	}
	c.logger.Info("tracker rebuilt", "path", c.tracker.TrackerPath(), "count", result.Manifest.Count, "skipped", len(result.Skipped))

	return result, nil
}
