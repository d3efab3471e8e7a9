package http

import (
	"verdant-agenda/internal/model"
	"verdant-agenda/internal/task"
	"verdant-agenda/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title     string `json:"title"      binding:"required,min=1,max=255"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time"   binding:"required"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:     r.Title,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// ---

type updateReq struct {
	ID        string  `json:"-"` // populated from URI param
	Title     *string `json:"title"      binding:"omitempty,min=1,max=255"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Completed *bool   `json:"completed"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:        r.ID,
		Title:     r.Title,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Completed: r.Completed,
	}
}

// ---

type suggestReq struct {
	TaskName        string `json:"task_name"        binding:"required,min=1,max=255"`
	TaskDuration    string `json:"task_duration"    binding:"required"`
	UserPreferences string `json:"user_preferences" binding:"max=1000"`
}

func (r suggestReq) toInput() task.SuggestInput {
	return task.SuggestInput{
		TaskName:        r.TaskName,
		TaskDuration:    r.TaskDuration,
		UserPreferences: r.UserPreferences,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	StartTime  string            `json:"start_time"`
	EndTime    string            `json:"end_time"`
	Completed  bool              `json:"completed"`
	CreateTime response.DateTime `json:"create_time"`
	UpdateTime response.DateTime `json:"update_time"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:         t.ID,
		Title:      t.Title,
		StartTime:  t.StartTime,
		EndTime:    t.EndTime,
		Completed:  t.Completed,
		CreateTime: response.DateTime(t.CreateTime),
		UpdateTime: response.DateTime(t.UpdateTime),
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t)
	}
	return listResp{Tasks: items, Count: len(items)}
}

type suggestResp struct {
	SuggestedTime string `json:"suggested_time"`
	Reasoning     string `json:"reasoning"`
	StartTime     string `json:"start_time,omitempty"`
	EndTime       string `json:"end_time,omitempty"`
	Parsed        bool   `json:"parsed"`
	Provider      string `json:"provider,omitempty"`
}

func (h *handler) newSuggestResp(out task.SuggestOutput) suggestResp {
	return suggestResp{
		SuggestedTime: out.SuggestedTime,
		Reasoning:     out.Reasoning,
		StartTime:     out.StartTime,
		EndTime:       out.EndTime,
		Parsed:        out.Parsed,
		Provider:      out.Provider,
	}
}
