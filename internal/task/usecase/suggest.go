package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"verdant-agenda/internal/model"
	"verdant-agenda/internal/schedule"
	"verdant-agenda/internal/task"
	"verdant-agenda/pkg/llmprovider"
)

// allowedDurations are the task lengths the suggestion prompt accepts.
var allowedDurations = map[string]struct{}{
	"15 minutes":        {},
	"30 minutes":        {},
	"1 hour":            {},
	"1 hour 30 minutes": {},
	"2 hours":           {},
}

// Suggest computes the user's free slots, asks the LLM for a fitting time
// range, and parses the answer back into HH:MM endpoints when possible.
func (uc *implUseCase) Suggest(ctx context.Context, sc model.Scope, input task.SuggestInput) (task.SuggestOutput, error) {
	name := strings.TrimSpace(input.TaskName)
	if name == "" {
		return task.SuggestOutput{}, task.ErrEmptyTitle
	}
	if _, ok := allowedDurations[input.TaskDuration]; !ok {
		return task.SuggestOutput{}, task.ErrInvalidDuration
	}

	tasks, err := uc.repo.List(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "Suggest: failed to load schedule for user %s: %v", sc.UserID, err)
		return task.SuggestOutput{}, err
	}

	slots := schedule.FreeSlots(tasks, uc.bounds)
	slotText := schedule.FormatSlots(slots)
	uc.l.Debugf(ctx, "Suggest: user=%s slots=%q", sc.UserID, slotText)

	prompt := schedule.BuildSuggestionPrompt(name, input.TaskDuration, slotText, input.UserPreferences)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: schedule.SuggestionSystemPrompt}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: prompt}}},
		},
		Temperature: uc.temperature,
		MaxTokens:   uc.maxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Suggest: LLM request failed for user %s: %v", sc.UserID, err)
		return task.SuggestOutput{}, fmt.Errorf("%w: %v", task.ErrSuggestionFailed, err)
	}

	raw := resp.Text()
	cleaned := sanitizeJSONResponse(raw)

	var suggestion schedule.Suggestion
	if err := json.Unmarshal([]byte(cleaned), &suggestion); err != nil {
		uc.l.Errorf(ctx, "Suggest: malformed LLM response. Raw=%q Cleaned=%q", raw, cleaned)
		return task.SuggestOutput{}, fmt.Errorf("%w: malformed model response", task.ErrSuggestionFailed)
	}
	if suggestion.SuggestedTime == "" {
		return task.SuggestOutput{}, fmt.Errorf("%w: empty suggestion", task.ErrSuggestionFailed)
	}

	out := task.SuggestOutput{
		SuggestedTime: suggestion.SuggestedTime,
		Reasoning:     suggestion.Reasoning,
		Provider:      resp.ProviderName,
	}

	// A suggestion the parser cannot normalize is still shown to the user;
	// it just cannot prefill the task form.
	interval, err := schedule.ParseRange(suggestion.SuggestedTime)
	switch {
	case err == nil:
		out.StartTime = interval.Start
		out.EndTime = interval.End
		out.Parsed = true
	case errors.Is(err, schedule.ErrUnparseableRange):
		uc.l.Warnf(ctx, "Suggest: unparseable suggested time %q for user %s", suggestion.SuggestedTime, sc.UserID)
	default:
		return task.SuggestOutput{}, err
	}

	return out, nil
}
