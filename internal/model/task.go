package model

import "time"

// Task is a single scheduled item on a user's agenda.
// StartTime and EndTime are zero-padded 24-hour "HH:MM" strings, which makes
// lexicographic comparison equivalent to chronological comparison.
type Task struct {
	ID         string    `firestore:"-"          json:"id"`
	Title      string    `firestore:"title"      json:"title"`
	StartTime  string    `firestore:"startTime"  json:"start_time"`
	EndTime    string    `firestore:"endTime"    json:"end_time"`
	Completed  bool      `firestore:"completed"  json:"completed"`
	CreateTime time.Time `firestore:"createTime" json:"create_time"`
	UpdateTime time.Time `firestore:"updateTime" json:"update_time"`
}
