package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"verdant-agenda/internal/model"
	"verdant-agenda/internal/task/repository"
)

// tasks returns the per-user task collection.
func (r *implRepository) tasks(sc model.Scope) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(sc.UserID).Collection(tasksCollection)
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions) (model.Task, error) {
	now := time.Now().UTC()
	task := model.Task{
		ID:         uuid.NewString(),
		Title:      opt.Title,
		StartTime:  opt.StartTime,
		EndTime:    opt.EndTime,
		Completed:  false,
		CreateTime: now,
		UpdateTime: now,
	}

	if _, err := r.tasks(sc).Doc(task.ID).Create(ctx, task); err != nil {
		r.l.Errorf(ctx, "task repository: failed to create task for user %s: %v", sc.UserID, err)
		return model.Task{}, err
	}

	return task, nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	snap, err := r.tasks(sc).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.Task{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "task repository: failed to get task %s: %v", id, err)
		return model.Task{}, err
	}

	return snapshotToTask(snap)
}

func (r *implRepository) List(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	iter := r.tasks(sc).OrderBy("startTime", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	tasks := make([]model.Task, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			r.l.Errorf(ctx, "task repository: failed to list tasks for user %s: %v", sc.UserID, err)
			return nil, err
		}

		task, err := snapshotToTask(snap)
		if err != nil {
			r.l.Warnf(ctx, "task repository: skipping malformed task %s: %v", snap.Ref.ID, err)
			continue
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opt repository.UpdateTaskOptions) (model.Task, error) {
	updates := make([]firestore.Update, 0, 5)
	if opt.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *opt.Title})
	}
	if opt.StartTime != nil {
		updates = append(updates, firestore.Update{Path: "startTime", Value: *opt.StartTime})
	}
	if opt.EndTime != nil {
		updates = append(updates, firestore.Update{Path: "endTime", Value: *opt.EndTime})
	}
	if opt.Completed != nil {
		updates = append(updates, firestore.Update{Path: "completed", Value: *opt.Completed})
	}
	if len(updates) == 0 {
		return r.Get(ctx, sc, opt.ID)
	}
	updates = append(updates, firestore.Update{Path: "updateTime", Value: time.Now().UTC()})

	if _, err := r.tasks(sc).Doc(opt.ID).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return model.Task{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "task repository: failed to update task %s: %v", opt.ID, err)
		return model.Task{}, err
	}

	return r.Get(ctx, sc, opt.ID)
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	// Firestore deletes are idempotent; probe first so missing tasks
	// surface as not-found to the caller.
	if _, err := r.Get(ctx, sc, id); err != nil {
		return err
	}

	if _, err := r.tasks(sc).Doc(id).Delete(ctx); err != nil {
		r.l.Errorf(ctx, "task repository: failed to delete task %s: %v", id, err)
		return err
	}

	return nil
}

func (r *implRepository) DeleteAll(ctx context.Context, sc model.Scope) error {
	iter := r.tasks(sc).Select().Documents(ctx)
	defer iter.Stop()

	bw := r.client.BulkWriter(ctx)
	deleted := 0

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			bw.End()
			r.l.Errorf(ctx, "task repository: failed to enumerate tasks for user %s: %v", sc.UserID, err)
			return err
		}

		if _, err := bw.Delete(snap.Ref); err != nil {
			bw.End()
			r.l.Errorf(ctx, "task repository: failed to queue delete for task %s: %v", snap.Ref.ID, err)
			return err
		}
		deleted++
	}

	bw.End()
	r.l.Infof(ctx, "task repository: cleared %d task(s) for user %s", deleted, sc.UserID)
	return nil
}

func (r *implRepository) Watch(ctx context.Context, sc model.Scope) (<-chan []model.Task, error) {
	snapshots := r.tasks(sc).OrderBy("startTime", firestore.Asc).Snapshots(ctx)
	ch := make(chan []model.Task, 1)

	go func() {
		defer close(ch)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					r.l.Warnf(ctx, "task repository: watch for user %s ended: %v", sc.UserID, err)
				}
				return
			}

			tasks := make([]model.Task, 0)
			docs := snap.Documents
			for {
				doc, err := docs.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					r.l.Warnf(ctx, "task repository: watch iteration for user %s failed: %v", sc.UserID, err)
					return
				}
				task, err := snapshotToTask(doc)
				if err != nil {
					continue
				}
				tasks = append(tasks, task)
			}

			select {
			case ch <- tasks:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

func snapshotToTask(snap *firestore.DocumentSnapshot) (model.Task, error) {
	var task model.Task
	if err := snap.DataTo(&task); err != nil {
		return model.Task{}, err
	}
	task.ID = snap.Ref.ID
	return task, nil
}
