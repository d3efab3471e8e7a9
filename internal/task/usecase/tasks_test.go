package usecase

import (
	"context"
	"errors"
	"testing"

	"verdant-agenda/internal/model"
	"verdant-agenda/internal/schedule"
	"verdant-agenda/internal/task"
)

func newTestUseCase(repo *mockRepository, llm *stubLLM) *implUseCase {
	if llm == nil {
		llm = &stubLLM{}
	}
	return New(noopLogger{}, repo, llm, schedule.DefaultBounds(), 0.4, 512)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   task.CreateInput
		wantErr error
	}{
		{
			name:  "valid",
			input: task.CreateInput{Title: "Standup", StartTime: "09:00", EndTime: "09:15"},
		},
		{
			name:    "empty title",
			input:   task.CreateInput{Title: "   ", StartTime: "09:00", EndTime: "09:15"},
			wantErr: task.ErrEmptyTitle,
		},
		{
			name:    "malformed start",
			input:   task.CreateInput{Title: "Standup", StartTime: "9:00", EndTime: "09:15"},
			wantErr: task.ErrInvalidTime,
		},
		{
			name:    "malformed end",
			input:   task.CreateInput{Title: "Standup", StartTime: "09:00", EndTime: "25:00"},
			wantErr: task.ErrInvalidTime,
		},
		{
			name:    "start equals end",
			input:   task.CreateInput{Title: "Standup", StartTime: "09:00", EndTime: "09:00"},
			wantErr: task.ErrInvalidTimeRange,
		},
		{
			name:    "start after end",
			input:   task.CreateInput{Title: "Standup", StartTime: "10:00", EndTime: "09:00"},
			wantErr: task.ErrInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(newMockRepository(), nil)
			sc := model.Scope{UserID: "u1"}

			created, err := uc.Create(context.Background(), sc, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.ID == "" {
				t.Error("expected created task to have an ID")
			}
			if created.Title != "Standup" {
				t.Errorf("unexpected title %q", created.Title)
			}
		})
	}
}

func TestCreateTrimsTitle(t *testing.T) {
	uc := newTestUseCase(newMockRepository(), nil)
	sc := model.Scope{UserID: "u1"}

	created, err := uc.Create(context.Background(), sc, task.CreateInput{
		Title: "  Review PR  ", StartTime: "10:00", EndTime: "10:30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Title != "Review PR" {
		t.Errorf("expected trimmed title, got %q", created.Title)
	}
}

func TestListIsScopedPerUser(t *testing.T) {
	repo := newMockRepository()
	uc := newTestUseCase(repo, nil)
	ctx := context.Background()

	alice := model.Scope{UserID: "alice"}
	bob := model.Scope{UserID: "bob"}

	if _, err := uc.Create(ctx, alice, task.CreateInput{Title: "A", StartTime: "09:00", EndTime: "10:00"}); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Create(ctx, bob, task.CreateInput{Title: "B", StartTime: "11:00", EndTime: "12:00"}); err != nil {
		t.Fatal(err)
	}

	got, err := uc.List(ctx, alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "A" {
		t.Errorf("expected only alice's task, got %+v", got)
	}
}

func TestUpdateToggleCompleted(t *testing.T) {
	repo := newMockRepository()
	uc := newTestUseCase(repo, nil)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	created, err := uc.Create(ctx, sc, task.CreateInput{Title: "Gym", StartTime: "18:00", EndTime: "19:00"})
	if err != nil {
		t.Fatal(err)
	}

	done := true
	updated, err := uc.Update(ctx, sc, task.UpdateInput{ID: created.ID, Completed: &done})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Completed {
		t.Error("expected task to be completed")
	}
}

func TestUpdatePartialTimeValidatesCombinedRange(t *testing.T) {
	repo := newMockRepository()
	uc := newTestUseCase(repo, nil)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	created, err := uc.Create(ctx, sc, task.CreateInput{Title: "Lunch", StartTime: "12:00", EndTime: "12:30"})
	if err != nil {
		t.Fatal(err)
	}

	// Moving only the start past the stored end must fail.
	badStart := "13:00"
	if _, err := uc.Update(ctx, sc, task.UpdateInput{ID: created.ID, StartTime: &badStart}); !errors.Is(err, task.ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}

	// Moving only the end earlier but still after start is fine.
	newEnd := "12:15"
	updated, err := uc.Update(ctx, sc, task.UpdateInput{ID: created.ID, EndTime: &newEnd})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.EndTime != "12:15" {
		t.Errorf("expected end 12:15, got %s", updated.EndTime)
	}
}

func TestUpdateNotFound(t *testing.T) {
	uc := newTestUseCase(newMockRepository(), nil)
	done := true

	_, err := uc.Update(context.Background(), model.Scope{UserID: "u1"}, task.UpdateInput{ID: "missing", Completed: &done})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	uc := newTestUseCase(newMockRepository(), nil)

	err := uc.Delete(context.Background(), model.Scope{UserID: "u1"}, "missing")
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDeleteAllClearsSchedule(t *testing.T) {
	repo := newMockRepository()
	uc := newTestUseCase(repo, nil)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	for _, in := range []task.CreateInput{
		{Title: "One", StartTime: "09:00", EndTime: "10:00"},
		{Title: "Two", StartTime: "10:00", EndTime: "11:00"},
	} {
		if _, err := uc.Create(ctx, sc, in); err != nil {
			t.Fatal(err)
		}
	}

	if err := uc.DeleteAll(ctx, sc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := uc.List(ctx, sc)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty schedule, got %d task(s)", len(got))
	}
}
