package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle       = errors.New("task title is empty")
	ErrInvalidTime      = errors.New("time must be in 24-hour HH:MM format")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidDuration  = errors.New("unsupported task duration")
	ErrSuggestionFailed = errors.New("could not get a suggestion")
)
