package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/tiwariParth/clean-todo-cli/internal/models"
	"github.com/tiwariParth/clean-todo-cli/internal/storage"
)

// Store implements the storage.Storage interface using in-memory storage
type Store struct {
	tasks  []models.Task
	reads  int
	writes int

	// ReadErr and WriteErr, when set, are returned (wrapped) by the next
	// calls to ReadAll and WriteAll.
	ReadErr  error
	WriteErr error

	mu sync.Mutex
}

// New creates a Store holding a copy of tasks
func New(tasks ...models.Task) *Store {
	return &Store{tasks: clone(tasks)}
}

// ReadAll returns a copy of the stored collection
func (m *Store) ReadAll(ctx context.Context) ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reads++
	if m.ReadErr != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrRead, m.ReadErr)
	}
	return clone(m.tasks), nil
}

// WriteAll replaces the stored collection with a copy of tasks
func (m *Store) WriteAll(ctx context.Context, tasks []models.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes++
	if m.WriteErr != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, m.WriteErr)
	}
	m.tasks = clone(tasks)
	return nil
}

// Tasks returns a copy of the stored collection without counting as a read
func (m *Store) Tasks() []models.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clone(m.tasks)
}

// Reads returns how many times ReadAll was called
func (m *Store) Reads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

// Writes returns how many times WriteAll was called
func (m *Store) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// clone deep-copies tasks so callers cannot mutate stored state through
// the CompletedAt pointer.
func clone(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		if t.CompletedAt != nil {
			at := *t.CompletedAt
			t.CompletedAt = &at
		}
		out[i] = t
	}
	return out
}
