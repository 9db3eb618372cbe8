// Package file implements the content repository on top of the JSON
// slot store. The whole collection lives in memory and is written back
// on every mutation, matching how small single-user data sets behave
// best: reads are free and the on-disk file is always complete.
package file

import (
	"context"
	"fmt"
	"sync"

	"creator-studio/internal/content/repository"
	"creator-studio/internal/model"
	"creator-studio/pkg/log"
	"creator-studio/pkg/notify"
	"creator-studio/pkg/slotstore"
)

// Slot is the store slot holding the content item collection.
const Slot = "content_items"

type implRepository struct {
	store *slotstore.Store
	l     log.Logger
	nc    *notify.Center

	mu    sync.RWMutex
	items []model.ContentItem
}

// New creates a file-backed Repository for the content domain. The
// slot is loaded once at construction; a corrupt or unreadable slot
// degrades to an empty collection and raises a notification.
func New(ctx context.Context, store *slotstore.Store, l log.Logger, nc *notify.Center) repository.Repository {
	if store == nil {
		panic("content/repository/file: store is required")
	}

	r := &implRepository{
		store: store,
		l:     l,
		nc:    nc,
		items: []model.ContentItem{},
	}

	var loaded []model.ContentItem
	if store.Load(ctx, Slot, &loaded) {
		r.items = loaded
	} else if store.Exists(Slot) && nc != nil {
		nc.Publish(ctx, notify.LevelWarning, "storage_degraded",
			"content items could not be read, starting from an empty collection",
			map[string]string{"slot": Slot})
	}
	return r
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("content/repository/file.%s", method)
}

// saveLocked writes the full collection back to the slot. Callers must
// hold the write lock.
func (r *implRepository) saveLocked(ctx context.Context, method string) error {
	if err := r.store.Save(ctx, Slot, r.items); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return repository.ErrFailedToSave
	}
	return nil
}
