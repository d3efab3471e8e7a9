package repository

import (
	"context"
	"errors"

	"verdant-agenda/internal/model"
)

// ErrNotFound is returned when a task does not exist for the given user.
var ErrNotFound = errors.New("task not found")

// TaskRepository is the interface for task data access operations.
// All operations are scoped to the user in model.Scope.
type TaskRepository interface {
	Create(ctx context.Context, sc model.Scope, opt CreateTaskOptions) (model.Task, error)
	Get(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	List(ctx context.Context, sc model.Scope) ([]model.Task, error)
	Update(ctx context.Context, sc model.Scope, opt UpdateTaskOptions) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	DeleteAll(ctx context.Context, sc model.Scope) error

	// Watch emits the user's full task list on every change until ctx is
	// canceled. The channel is closed when the watch ends.
	Watch(ctx context.Context, sc model.Scope) (<-chan []model.Task, error)
}
