// Package file implements the pillar repository on top of the JSON
// slot store. Pillars are kept per user in a single slot, so one file
// holds every user's themes and a mutation writes the whole map back.
package file

import (
	"context"
	"fmt"
	"sync"

	"creator-studio/internal/model"
	"creator-studio/internal/pillar/repository"
	"creator-studio/pkg/log"
	"creator-studio/pkg/notify"
	"creator-studio/pkg/slotstore"
)

// Slot is the store slot holding the pillar collections, keyed by
// user id.
const Slot = "pillars"

type implRepository struct {
	store *slotstore.Store
	l     log.Logger
	nc    *notify.Center

	mu    sync.RWMutex
	users map[string][]model.Pillar
}

// New creates a file-backed Repository for the pillar domain. The slot
// is loaded once at construction; a corrupt or unreadable slot
// degrades to an empty map and raises a notification.
func New(ctx context.Context, store *slotstore.Store, l log.Logger, nc *notify.Center) repository.Repository {
	if store == nil {
		panic("pillar/repository/file: store is required")
	}

	r := &implRepository{
		store: store,
		l:     l,
		nc:    nc,
		users: map[string][]model.Pillar{},
	}

	var loaded map[string][]model.Pillar
	if store.Load(ctx, Slot, &loaded) && loaded != nil {
		r.users = loaded
	} else if store.Exists(Slot) && nc != nil {
		nc.Publish(ctx, notify.LevelWarning, "storage_degraded",
			"pillars could not be read, starting from an empty collection",
			map[string]string{"slot": Slot})
	}
	return r
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("pillar/repository/file.%s", method)
}

// saveLocked writes the full user map back to the slot. Callers must
// hold the write lock.
func (r *implRepository) saveLocked(ctx context.Context, method string) error {
	if err := r.store.Save(ctx, Slot, r.users); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return repository.ErrFailedToSave
	}
	return nil
}
