// Package file implements the goal repository on top of the JSON slot
// store, mirroring the other file-backed collections: everything in
// memory, full snapshot written on every mutation.
package file

import (
	"context"
	"fmt"
	"sync"

	"creator-studio/internal/goal/repository"
	"creator-studio/internal/model"
	"creator-studio/pkg/log"
	"creator-studio/pkg/notify"
	"creator-studio/pkg/slotstore"
)

// Slot is the store slot holding the metric goal collection.
const Slot = "metric_goals"

type implRepository struct {
	store *slotstore.Store
	l     log.Logger
	nc    *notify.Center

	mu    sync.RWMutex
	goals []model.Goal
}

// New creates a file-backed Repository for the goal domain. The slot
// is loaded once at construction; a corrupt or unreadable slot
// degrades to an empty collection and raises a notification.
func New(ctx context.Context, store *slotstore.Store, l log.Logger, nc *notify.Center) repository.Repository {
	if store == nil {
		panic("goal/repository/file: store is required")
	}

	r := &implRepository{
		store: store,
		l:     l,
		nc:    nc,
		goals: []model.Goal{},
	}

	var loaded []model.Goal
	if store.Load(ctx, Slot, &loaded) {
		r.goals = loaded
	} else if store.Exists(Slot) && nc != nil {
		nc.Publish(ctx, notify.LevelWarning, "storage_degraded",
			"goals could not be read, starting from an empty collection",
			map[string]string{"slot": Slot})
	}
	return r
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("goal/repository/file.%s", method)
}

// saveLocked writes the full collection back to the slot. Callers must
// hold the write lock.
func (r *implRepository) saveLocked(ctx context.Context, method string) error {
	if err := r.store.Save(ctx, Slot, r.goals); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return repository.ErrFailedToSave
	}
	return nil
}
