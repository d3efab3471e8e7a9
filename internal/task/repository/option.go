package repository

// CreateTaskOptions holds the parameters for creating a task.
type CreateTaskOptions struct {
	Title     string
	StartTime string // 24-hour HH:MM
	EndTime   string // 24-hour HH:MM
}

// UpdateTaskOptions holds the parameters for a partial task update.
// Nil fields are not written.
type UpdateTaskOptions struct {
	ID        string
	Title     *string
	StartTime *string
	EndTime   *string
	Completed *bool
}
