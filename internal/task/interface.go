package task

import (
	"context"

	"verdant-agenda/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create adds a new task to the user's schedule.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)

	// List returns the user's tasks ordered by start time.
	List(ctx context.Context, sc model.Scope) ([]model.Task, error)

	// Update applies a partial update to a task (title, times, completion).
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)

	// Delete removes a single task.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// DeleteAll clears the user's entire schedule.
	DeleteAll(ctx context.Context, sc model.Scope) error

	// Suggest asks the LLM for a time slot that fits the user's free time.
	Suggest(ctx context.Context, sc model.Scope, input SuggestInput) (SuggestOutput, error)

	// Watch streams the user's task list whenever it changes.
	Watch(ctx context.Context, sc model.Scope) (<-chan []model.Task, error)
}
