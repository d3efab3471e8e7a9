package task

// CreateInput is the input for creating a task.
// Times are 24-hour HH:MM strings.
type CreateInput struct {
	Title     string
	StartTime string
	EndTime   string
}

// UpdateInput is the input for a partial task update.
// Nil fields are left unchanged.
type UpdateInput struct {
	ID        string
	Title     *string
	StartTime *string
	EndTime   *string
	Completed *bool
}

// SuggestInput is the input for requesting a time suggestion.
type SuggestInput struct {
	TaskName        string
	TaskDuration    string
	UserPreferences string
}

// SuggestOutput is the result of a time suggestion.
// StartTime and EndTime are populated only when Parsed is true;
// otherwise SuggestedTime carries the model's raw phrasing.
type SuggestOutput struct {
	SuggestedTime string
	Reasoning     string
	StartTime     string
	EndTime       string
	Parsed        bool
	Provider      string
}
