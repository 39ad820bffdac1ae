package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tiwariParth/clean-todo-cli/internal/logger"
	"github.com/tiwariParth/clean-todo-cli/internal/models"
	"github.com/tiwariParth/clean-todo-cli/internal/storage"
	"github.com/tiwariParth/clean-todo-cli/internal/ui"
)

const ruleWidth = 50

// TodoApp implements the task operations. Every operation loads the full
// collection from storage, and mutating operations write it back in full.
type TodoApp struct {
	store storage.Storage
	out   *ui.Printer
	now   func() time.Time
}

// Option configures a TodoApp.
type Option func(*TodoApp)

// WithClock replaces time.Now as the source of ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *TodoApp) {
		a.now = now
	}
}

// New creates a TodoApp on top of store. Messages go to out, or to
// stdout/stderr when out is nil.
func New(store storage.Storage, out *ui.Printer, opts ...Option) *TodoApp {
	if out == nil {
		out = ui.NewPrinter(nil, nil)
	}
	a := &TodoApp{
		store: store,
		out:   out,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// load reads the collection. A read error is reported and an empty
// collection is used instead, so a damaged data file never locks the user
// out of the tool. The damaged file is left in place until the next write.
func (a *TodoApp) load(ctx context.Context) []models.Task {
	tasks, err := a.store.ReadAll(ctx)
	if err != nil {
		return a.failOpen(ctx, err)
	}
	return tasks
}

// loadForUpdate is load for operations that write the collection back.
// Only a collection that could not be parsed is replaced by an empty one.
// Any other read failure is returned, so a file that exists but cannot be
// read is never overwritten.
func (a *TodoApp) loadForUpdate(ctx context.Context) ([]models.Task, error) {
	tasks, err := a.store.ReadAll(ctx)
	switch {
	case err == nil:
		return tasks, nil
	case errors.Is(err, storage.ErrCorrupt):
		return a.failOpen(ctx, err), nil
	default:
		logger.Debug(ctx, "read failed, refusing to write", "err", err)
		return nil, err
	}
}

func (a *TodoApp) failOpen(ctx context.Context, err error) []models.Task {
	logger.Debug(ctx, "read failed, continuing with an empty list", "err", err)
	a.out.Error("Could not load tasks, continuing with an empty list: %v", err)
	return []models.Task{}
}

func (a *TodoApp) save(ctx context.Context, tasks []models.Task) error {
	if err := a.store.WriteAll(ctx, tasks); err != nil {
		logger.Debug(ctx, "write failed", "tasks", len(tasks), "err", err)
		return err
	}
	return nil
}

// AddTask appends a new pending task.
func (a *TodoApp) AddTask(ctx context.Context, description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrEmptyDescription
	}

	tasks, err := a.loadForUpdate(ctx)
	if err != nil {
		return err
	}
	now := a.now()
	task := models.NewTask(description, models.NextID(tasks, now), now)
	tasks = append(tasks, task)

	if err := a.save(ctx, tasks); err != nil {
		return err
	}

	logger.Debug(ctx, "task added", "id", task.ID)
	a.out.Success("Task added: \"%s\"", task.Description)
	return nil
}

// ListTasks prints every task with its task number and status. It never
// writes to storage.
func (a *TodoApp) ListTasks(ctx context.Context) error {
	tasks := a.load(ctx)

	if len(tasks) == 0 {
		a.out.Println(`📝 No tasks found. Add your first task with: add "Your task"`)
		return nil
	}

	rule := strings.Repeat("─", ruleWidth)
	a.out.Println()
	a.out.Println(ui.Bold("📋 Your Tasks:"))
	a.out.Println(ui.Faint(rule))
	for i, t := range tasks {
		a.out.Printf("%d. %s %s\n", i+1, statusIcon(t), t.Description)
	}
	a.out.Println(ui.Faint(rule))
	a.out.Printf("Total: %d tasks\n", len(tasks))
	return nil
}

func statusIcon(t models.Task) string {
	if t.IsCompleted() {
		return ui.Green("✅")
	}
	return ui.Yellow("⏳")
}

// CompleteTask marks the task at the 1-based position taskNumber as
// completed. Completing a task twice returns models.ErrAlreadyCompleted.
func (a *TodoApp) CompleteTask(ctx context.Context, taskNumber string) error {
	tasks, err := a.loadForUpdate(ctx)
	if err != nil {
		return err
	}

	idx, err := ValidateTaskNumber(taskNumber, len(tasks))
	if err != nil {
		return err
	}

	if err := tasks[idx].Complete(a.now()); err != nil {
		return err
	}

	if err := a.save(ctx, tasks); err != nil {
		return err
	}

	logger.Debug(ctx, "task completed", "id", tasks[idx].ID)
	a.out.Success("Task %d marked as completed", idx+1)
	return nil
}

// RemoveTask deletes the task at the 1-based position taskNumber. Tasks
// after it move up one position.
func (a *TodoApp) RemoveTask(ctx context.Context, taskNumber string) error {
	tasks, err := a.loadForUpdate(ctx)
	if err != nil {
		return err
	}

	idx, err := ValidateTaskNumber(taskNumber, len(tasks))
	if err != nil {
		return err
	}

	removed := tasks[idx]
	tasks = append(tasks[:idx], tasks[idx+1:]...)

	if err := a.save(ctx, tasks); err != nil {
		return err
	}

	logger.Debug(ctx, "task removed", "id", removed.ID)
	a.out.Printf("🗑️  Task %d removed: \"%s\"\n", idx+1, removed.Description)
	return nil
}

// leadingInt matches an optional sign and the run of digits a task number
// starts with. Anything after the digits is ignored, so "2abc" is 2 and
// "1.5" is 1.
var leadingInt = regexp.MustCompile(`^[+-]?[0-9]+`)

// ValidateTaskNumber parses a 1-based task number and returns the matching
// 0-based index. On failure the index is -1 and the error names the valid
// range.
func ValidateTaskNumber(raw string, total int) (int, error) {
	digits := leadingInt.FindString(strings.TrimLeft(raw, " \t\n\r\v\f"))
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > total {
		return -1, fmt.Errorf("%w: please use a number between 1 and %d", ErrInvalidTaskNumber, total)
	}
	return n - 1, nil
}

// IsWarning reports whether err describes a rejected but harmless request
// rather than a failure.
func IsWarning(err error) bool {
	return errors.Is(err, models.ErrAlreadyCompleted)
}
