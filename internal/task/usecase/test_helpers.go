package usecase

import (
	"context"
	"fmt"
	"sort"

	"verdant-agenda/internal/model"
	"verdant-agenda/internal/task/repository"
	"verdant-agenda/pkg/llmprovider"
)

// noopLogger satisfies pkg/log.Logger for tests.
type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                  {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                  {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepository is an in-memory TaskRepository keyed by user then task ID.
type mockRepository struct {
	tasks   map[string]map[string]model.Task
	nextID  int
	listErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{tasks: make(map[string]map[string]model.Task)}
}

func (m *mockRepository) userTasks(sc model.Scope) map[string]model.Task {
	if m.tasks[sc.UserID] == nil {
		m.tasks[sc.UserID] = make(map[string]model.Task)
	}
	return m.tasks[sc.UserID]
}

func (m *mockRepository) Create(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions) (model.Task, error) {
	m.nextID++
	t := model.Task{
		ID:        fmt.Sprintf("task-%d", m.nextID),
		Title:     opt.Title,
		StartTime: opt.StartTime,
		EndTime:   opt.EndTime,
	}
	m.userTasks(sc)[t.ID] = t
	return t, nil
}

func (m *mockRepository) Get(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, ok := m.userTasks(sc)[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (m *mockRepository) List(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]model.Task, 0, len(m.userTasks(sc)))
	for _, t := range m.userTasks(sc) {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (m *mockRepository) Update(ctx context.Context, sc model.Scope, opt repository.UpdateTaskOptions) (model.Task, error) {
	t, ok := m.userTasks(sc)[opt.ID]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.StartTime != nil {
		t.StartTime = *opt.StartTime
	}
	if opt.EndTime != nil {
		t.EndTime = *opt.EndTime
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
	}
	m.userTasks(sc)[opt.ID] = t
	return t, nil
}

func (m *mockRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, ok := m.userTasks(sc)[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.userTasks(sc), id)
	return nil
}

func (m *mockRepository) DeleteAll(ctx context.Context, sc model.Scope) error {
	m.tasks[sc.UserID] = make(map[string]model.Task)
	return nil
}

func (m *mockRepository) Watch(ctx context.Context, sc model.Scope) (<-chan []model.Task, error) {
	ch := make(chan []model.Task, 1)
	tasks, _ := m.List(ctx, sc)
	ch <- tasks
	close(ch)
	return ch, nil
}

// stubLLM returns a canned response or error and records the last request.
type stubLLM struct {
	response *llmprovider.Response
	err      error
	lastReq  *llmprovider.Request
}

func (s *stubLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func llmTextResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: text}}},
		ProviderName: "gemini",
		Usage:        &llmprovider.Usage{},
	}
}
