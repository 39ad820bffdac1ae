package storage

import (
	"context"
	"errors"

	"github.com/tiwariParth/clean-todo-cli/internal/models"
)

// Common errors that can be returned by any storage implementation
var (
	ErrRead  = errors.New("cannot read tasks file")
	ErrWrite = errors.New("cannot write tasks file")

	// ErrCorrupt is wrapped together with ErrRead when the stored data was
	// read but could not be decoded.
	ErrCorrupt = errors.New("tasks file is not valid JSON")
)

// Storage loads and saves the whole task collection at once.
//
// There are no partial updates: every mutating operation reads the full
// collection, changes it in memory and hands the full collection back to
// WriteAll.
type Storage interface {
	// ReadAll returns the stored tasks in display order. A store that has
	// never been written returns an empty collection and no error.
	ReadAll(ctx context.Context) ([]models.Task, error)

	// WriteAll replaces the stored collection with tasks.
	WriteAll(ctx context.Context, tasks []models.Task) error
}
