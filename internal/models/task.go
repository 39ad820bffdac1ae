package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrAlreadyCompleted is returned when completing a task that is already done.
var ErrAlreadyCompleted = errors.New("task is already completed")

// Status represents the current status of a task
type Status string

const (
	Pending   Status = "pending"
	Completed Status = "completed"
)

// String returns the string representation of Status
func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Completed:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Task represents a single todo item
type Task struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// NewTask creates a pending task. The description is trimmed; callers are
// expected to have rejected blank descriptions already.
func NewTask(description string, id int64, now time.Time) Task {
	return Task{
		ID:          id,
		Description: strings.TrimSpace(description),
		Status:      Pending,
		CreatedAt:   Timestamp(now),
	}
}

// NextID returns the id for a task created at now. Ids are creation times in
// milliseconds, bumped past the highest existing id so that two tasks created
// within the same millisecond still get distinct ids.
func NextID(existing []Task, now time.Time) int64 {
	id := now.UnixMilli()
	for _, t := range existing {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

// TimeLayout is how timestamps are written to the data file: UTC with
// exactly three fractional digits, even when they are zero.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp normalizes t to the precision stored on disk.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// MarshalJSON writes the timestamps in TimeLayout. Reading uses the default
// time.Time decoding, which accepts any RFC 3339 value.
func (t Task) MarshalJSON() ([]byte, error) {
	type task Task
	out := struct {
		task
		CreatedAt   string  `json:"createdAt"`
		CompletedAt *string `json:"completedAt,omitempty"`
	}{
		task:      task(t),
		CreatedAt: t.CreatedAt.UTC().Format(TimeLayout),
	}
	if t.CompletedAt != nil {
		at := t.CompletedAt.UTC().Format(TimeLayout)
		out.CompletedAt = &at
	}
	return json.Marshal(out)
}

// IsCompleted reports whether the task has been completed
func (t Task) IsCompleted() bool {
	return t.Status == Completed
}

// Complete marks the task as completed. A task can only be completed once.
func (t *Task) Complete(now time.Time) error {
	if t.IsCompleted() {
		return ErrAlreadyCompleted
	}
	completedAt := Timestamp(now)
	t.Status = Completed
	t.CompletedAt = &completedAt
	return nil
}

// Validate checks if the task has valid data
func (t Task) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return errors.New("task description cannot be empty")
	}
	if t.Status != Pending && t.Status != Completed {
		return errors.New("status must be pending or completed")
	}
	if t.Status == Pending && t.CompletedAt != nil {
		return errors.New("pending task cannot have a completion time")
	}
	return nil
}
