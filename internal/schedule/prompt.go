package schedule

import "fmt"

// SuggestionSystemPrompt instructs the model to pick a slot and answer with a
// fixed JSON shape the parser understands.
const SuggestionSystemPrompt = `You are a personal scheduling assistant. Your goal is to suggest the optimal time for a given task, taking into account the available time slots, the task's duration, and the user's preferences.

RULES:
1. The suggested time range MUST fit entirely inside one of the available time slots.
2. The suggested range MUST be exactly as long as the task duration.
3. Respect the user's preferences when they do not conflict with availability.
4. Return ONLY a valid JSON object. No markdown, no code blocks, no explanation text outside the JSON.

Return JSON with this exact format:
{
  "suggested_time": "HH:MM - HH:MM",
  "reasoning": "Brief explanation of why this slot was chosen"
}`

// BuildSuggestionPrompt builds the user prompt for a single suggestion
// request. All four fields are embedded verbatim; the system prompt is sent
// separately as a system instruction.
func BuildSuggestionPrompt(taskName, taskDuration, availableTimeSlots, userPreferences string) string {
	if userPreferences == "" {
		userPreferences = "none"
	}
	return fmt.Sprintf(`Task Name: %s
Task Duration: %s
Available Time Slots: %s
User Preferences: %s

Now return ONLY the JSON object:`,
		taskName, taskDuration, availableTimeSlots, userPreferences)
}
