package firestore

import (
	"cloud.google.com/go/firestore"

	"verdant-agenda/internal/task/repository"
	pkgLog "verdant-agenda/pkg/log"
)

const (
	usersCollection = "users"
	tasksCollection = "tasks"
)

type implRepository struct {
	client *firestore.Client
	l      pkgLog.Logger
}

// New creates a new Firestore-backed task repository.
// Tasks live at users/{uid}/tasks/{taskID}.
func New(client *firestore.Client, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
