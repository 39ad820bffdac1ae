package app

import "errors"

var (
	ErrEmptyDescription  = errors.New("task description cannot be empty")
	ErrInvalidTaskNumber = errors.New("invalid task number")
)
