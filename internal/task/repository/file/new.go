// Package file implements the task repository on top of the JSON slot
// store. The whole collection lives in memory and is written back on
// every mutation, so reads never touch disk and the stored file is
// always a complete snapshot.
package file

import (
	"context"
	"fmt"
	"sync"

	"creator-studio/internal/model"
	"creator-studio/internal/task/repository"
	"creator-studio/pkg/log"
	"creator-studio/pkg/notify"
	"creator-studio/pkg/slotstore"
)

// Slot is the store slot holding the task collection.
const Slot = "tasks"

type implRepository struct {
	store *slotstore.Store
	l     log.Logger
	nc    *notify.Center

	mu    sync.RWMutex
	tasks []model.Task
}

// New creates a file-backed Repository for the task domain. The slot
// is loaded once at construction; a corrupt or unreadable slot
// degrades to an empty collection and raises a notification.
func New(ctx context.Context, store *slotstore.Store, l log.Logger, nc *notify.Center) repository.Repository {
	if store == nil {
		panic("task/repository/file: store is required")
	}

	r := &implRepository{
		store: store,
		l:     l,
		nc:    nc,
		tasks: []model.Task{},
	}

	var loaded []model.Task
	if store.Load(ctx, Slot, &loaded) {
		r.tasks = loaded
	} else if store.Exists(Slot) && nc != nil {
		nc.Publish(ctx, notify.LevelWarning, "storage_degraded",
			"tasks could not be read, starting from an empty collection",
			map[string]string{"slot": Slot})
	}
	return r
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/file.%s", method)
}

// saveLocked writes the full collection back to the slot. Callers must
// hold the write lock.
func (r *implRepository) saveLocked(ctx context.Context, method string) error {
	if err := r.store.Save(ctx, Slot, r.tasks); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return repository.ErrFailedToSave
	}
	return nil
}
