package usecase

import (
	"context"
	"errors"
	"strings"

	"verdant-agenda/internal/model"
	"verdant-agenda/internal/schedule"
	"verdant-agenda/internal/task"
	"verdant-agenda/internal/task/repository"
)

// Create adds a new task to the user's schedule.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}
	if err := validateTimeRange(input.StartTime, input.EndTime); err != nil {
		return model.Task{}, err
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateTaskOptions{
		Title:     title,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Create: failed to store task for user %s: %v", sc.UserID, err)
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "Create: user=%s task=%s %s-%s", sc.UserID, created.ID, created.StartTime, created.EndTime)
	return created, nil
}

// List returns the user's tasks ordered by start time.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	tasks, err := uc.repo.List(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "List: failed to list tasks for user %s: %v", sc.UserID, err)
		return nil, err
	}
	return tasks, nil
}

// Update applies a partial update to a task.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		if trimmed == "" {
			return model.Task{}, task.ErrEmptyTitle
		}
		input.Title = &trimmed
	}

	if input.StartTime != nil || input.EndTime != nil {
		start, end, err := uc.resolveTimes(ctx, sc, input)
		if err != nil {
			return model.Task{}, err
		}
		if err := validateTimeRange(start, end); err != nil {
			return model.Task{}, err
		}
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateTaskOptions{
		ID:        input.ID,
		Title:     input.Title,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Completed: input.Completed,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "Update: failed to update task %s for user %s: %v", input.ID, sc.UserID, err)
		return model.Task{}, err
	}

	return updated, nil
}

// Delete removes a single task.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "Delete: failed to delete task %s for user %s: %v", id, sc.UserID, err)
		return err
	}
	return nil
}

// DeleteAll clears the user's entire schedule.
func (uc *implUseCase) DeleteAll(ctx context.Context, sc model.Scope) error {
	if err := uc.repo.DeleteAll(ctx, sc); err != nil {
		uc.l.Errorf(ctx, "DeleteAll: failed to clear tasks for user %s: %v", sc.UserID, err)
		return err
	}
	return nil
}

// Watch streams the user's task list whenever it changes.
func (uc *implUseCase) Watch(ctx context.Context, sc model.Scope) (<-chan []model.Task, error) {
	ch, err := uc.repo.Watch(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "Watch: failed to start watch for user %s: %v", sc.UserID, err)
		return nil, err
	}
	return ch, nil
}

// resolveTimes fills in the missing side of a partial time update from the
// stored task so the combined range can be validated.
func (uc *implUseCase) resolveTimes(ctx context.Context, sc model.Scope, input task.UpdateInput) (string, string, error) {
	if input.StartTime != nil && input.EndTime != nil {
		return *input.StartTime, *input.EndTime, nil
	}

	current, err := uc.repo.Get(ctx, sc, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", task.ErrTaskNotFound
		}
		return "", "", err
	}

	start, end := current.StartTime, current.EndTime
	if input.StartTime != nil {
		start = *input.StartTime
	}
	if input.EndTime != nil {
		end = *input.EndTime
	}
	return start, end, nil
}

// validateTimeRange checks both endpoints are well-formed and ordered.
// HH:MM strings are zero-padded, so string comparison is chronological.
func validateTimeRange(start, end string) error {
	if !schedule.IsValidTime(start) || !schedule.IsValidTime(end) {
		return task.ErrInvalidTime
	}
	if start >= end {
		return task.ErrInvalidTimeRange
	}
	return nil
}
