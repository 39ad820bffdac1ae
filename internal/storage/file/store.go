package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tiwariParth/clean-todo-cli/internal/logger"
	"github.com/tiwariParth/clean-todo-cli/internal/models"
	"github.com/tiwariParth/clean-todo-cli/internal/storage"
)

// DefaultPath is the data file used when none is configured.
const DefaultPath = "tasks.json"

// Store implements storage.Storage on top of a single JSON file.
//
// The file is never held open: every call opens, fully reads or writes, and
// closes it. There is no locking, so two processes writing at the same time
// will clobber each other and the last writer wins.
type Store struct {
	filePath string
}

// New creates a Store backed by filePath. An empty path selects DefaultPath.
func New(filePath string) *Store {
	if filePath == "" {
		filePath = DefaultPath
	}
	return &Store{filePath: filePath}
}

// Path returns the data file location
func (s *Store) Path() string {
	return s.filePath
}

// ReadAll loads the task collection from the data file
func (s *Store) ReadAll(ctx context.Context) ([]models.Task, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug(ctx, "data file does not exist yet", "path", s.filePath)
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("%w: %v", storage.ErrRead, err)
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %w: %s: %v", storage.ErrRead, storage.ErrCorrupt, s.filePath, err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			logger.Warn(ctx, "stored task is invalid", "path", s.filePath, "position", i+1, "err", err)
		}
	}

	logger.Debug(ctx, "loaded tasks", "path", s.filePath, "count", len(tasks))
	return tasks, nil
}

// WriteAll overwrites the data file with tasks. The new content is written to
// a temporary file next to the data file and renamed over it, so readers see
// either the old collection or the new one.
func (s *Store) WriteAll(ctx context.Context, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal tasks: %v", storage.ErrWrite, err)
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: failed to create directory %s: %v", storage.ErrWrite, dir, err)
		}
	}

	tmpPath := s.filePath + ".tmp"
	defer func() { _ = os.Remove(tmpPath) }()

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, err)
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, err)
	}

	logger.Debug(ctx, "saved tasks", "path", s.filePath, "count", len(tasks))
	return nil
}
