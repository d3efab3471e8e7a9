package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"verdant-agenda/internal/model"
	"verdant-agenda/internal/task"
)

func TestSuggestSuccess(t *testing.T) {
	repo := newMockRepository()
	llm := &stubLLM{response: llmTextResponse(`{"suggested_time": "2:00 PM - 3:00 PM", "reasoning": "Afternoon is free."}`)}
	uc := newTestUseCase(repo, llm)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	if _, err := uc.Create(ctx, sc, task.CreateInput{Title: "Standup", StartTime: "09:00", EndTime: "09:15"}); err != nil {
		t.Fatal(err)
	}

	out, err := uc.Suggest(ctx, sc, task.SuggestInput{TaskName: "Deep work", TaskDuration: "1 hour"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Parsed {
		t.Fatal("expected suggestion to be parsed")
	}
	if out.StartTime != "14:00" || out.EndTime != "15:00" {
		t.Errorf("expected 14:00-15:00, got %s-%s", out.StartTime, out.EndTime)
	}
	if out.Reasoning != "Afternoon is free." {
		t.Errorf("unexpected reasoning %q", out.Reasoning)
	}
	if out.Provider != "gemini" {
		t.Errorf("unexpected provider %q", out.Provider)
	}
}

func TestSuggestEmbedsFreeSlotsInPrompt(t *testing.T) {
	repo := newMockRepository()
	llm := &stubLLM{response: llmTextResponse(`{"suggested_time": "09:15 - 09:45", "reasoning": "r"}`)}
	uc := newTestUseCase(repo, llm)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	if _, err := uc.Create(ctx, sc, task.CreateInput{Title: "Standup", StartTime: "09:00", EndTime: "09:15"}); err != nil {
		t.Fatal(err)
	}

	if _, err := uc.Suggest(ctx, sc, task.SuggestInput{TaskName: "Writing", TaskDuration: "30 minutes", UserPreferences: "mornings"}); err != nil {
		t.Fatal(err)
	}

	if llm.lastReq == nil || len(llm.lastReq.Messages) != 1 {
		t.Fatal("expected one user message")
	}
	prompt := llm.lastReq.Messages[0].Parts[0].Text
	if !strings.Contains(prompt, "09:15 - 17:00") {
		t.Errorf("prompt missing free slot: %q", prompt)
	}
	if !strings.Contains(prompt, "mornings") {
		t.Errorf("prompt missing preferences: %q", prompt)
	}
	if llm.lastReq.SystemInstruction == nil {
		t.Error("expected a system instruction")
	}
}

func TestSuggestHandlesCodeFencedJSON(t *testing.T) {
	llm := &stubLLM{response: llmTextResponse("```json\n{\"suggested_time\": \"10:00 - 11:00\", \"reasoning\": \"r\"}\n```")}
	uc := newTestUseCase(newMockRepository(), llm)

	out, err := uc.Suggest(context.Background(), model.Scope{UserID: "u1"}, task.SuggestInput{TaskName: "Plan", TaskDuration: "1 hour"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.StartTime != "10:00" || out.EndTime != "11:00" {
		t.Errorf("expected 10:00-11:00, got %s-%s", out.StartTime, out.EndTime)
	}
}

func TestSuggestUnparseableTimeIsNotFatal(t *testing.T) {
	llm := &stubLLM{response: llmTextResponse(`{"suggested_time": "sometime after lunch", "reasoning": "r"}`)}
	uc := newTestUseCase(newMockRepository(), llm)

	out, err := uc.Suggest(context.Background(), model.Scope{UserID: "u1"}, task.SuggestInput{TaskName: "Plan", TaskDuration: "1 hour"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Parsed {
		t.Error("expected Parsed=false for prose suggestion")
	}
	if out.SuggestedTime != "sometime after lunch" {
		t.Errorf("raw suggestion should survive, got %q", out.SuggestedTime)
	}
	if out.StartTime != "" || out.EndTime != "" {
		t.Errorf("expected empty endpoints, got %s-%s", out.StartTime, out.EndTime)
	}
}

func TestSuggestValidation(t *testing.T) {
	uc := newTestUseCase(newMockRepository(), &stubLLM{})
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	if _, err := uc.Suggest(ctx, sc, task.SuggestInput{TaskName: "  ", TaskDuration: "1 hour"}); !errors.Is(err, task.ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := uc.Suggest(ctx, sc, task.SuggestInput{TaskName: "Plan", TaskDuration: "45 minutes"}); !errors.Is(err, task.ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestSuggestLLMFailure(t *testing.T) {
	llm := &stubLLM{err: errors.New("all providers failed")}
	uc := newTestUseCase(newMockRepository(), llm)

	_, err := uc.Suggest(context.Background(), model.Scope{UserID: "u1"}, task.SuggestInput{TaskName: "Plan", TaskDuration: "1 hour"})
	if !errors.Is(err, task.ErrSuggestionFailed) {
		t.Fatalf("expected ErrSuggestionFailed, got %v", err)
	}
}

func TestSuggestMalformedJSON(t *testing.T) {
	llm := &stubLLM{response: llmTextResponse("I think 2pm works best for you!")}
	uc := newTestUseCase(newMockRepository(), llm)

	_, err := uc.Suggest(context.Background(), model.Scope{UserID: "u1"}, task.SuggestInput{TaskName: "Plan", TaskDuration: "1 hour"})
	if !errors.Is(err, task.ErrSuggestionFailed) {
		t.Fatalf("expected ErrSuggestionFailed, got %v", err)
	}
}

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced no lang", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around", `Sure! {"a":1} Hope that helps.`, `{"a":1}`},
		{"no json", "no braces here", "no braces here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeJSONResponse(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
