package file

import (
	"context"
	"time"

	"github.com/google/uuid"

	"creator-studio/internal/model"
	repo "creator-studio/internal/pillar/repository"
)

// CreatePillar appends a new pillar to the user's collection and
// persists the map. The repository owns id and timestamp assignment.
func (r *implRepository) CreatePillar(ctx context.Context, opt repo.CreatePillarOptions) (model.Pillar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	pillar := model.Pillar{
		ID:          uuid.NewString(),
		UserID:      opt.UserID,
		Name:        opt.Name,
		Description: opt.Description,
		Keywords:    opt.Keywords,
		Color:       opt.Color,
		Tags:        opt.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	prev := r.users[opt.UserID]
	r.users[opt.UserID] = append(prev, pillar)
	if err := r.saveLocked(ctx, "CreatePillar"); err != nil {
		r.users[opt.UserID] = prev
		return model.Pillar{}, err
	}
	return pillar, nil
}

// GetOnePillar retrieves a single pillar by the provided filters (AND
// condition). Returns a zero-value pillar (ID == "") when not found —
// do NOT return an error for not-found.
func (r *implRepository) GetOnePillar(ctx context.Context, opt repo.GetOnePillarOptions) (model.Pillar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, pillar := range r.users[opt.UserID] {
		if opt.ID != "" && pillar.ID != opt.ID {
			continue
		}
		if opt.Name != "" && pillar.Name != opt.Name {
			continue
		}
		return pillar, nil
	}
	return model.Pillar{}, nil
}

// ListPillars returns the user's pillars in insertion order. A user
// with no pillars gets an empty slice, not nil.
func (r *implRepository) ListPillars(ctx context.Context, opt repo.ListPillarsOptions) ([]model.Pillar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.users[opt.UserID]
	out := make([]model.Pillar, len(stored))
	copy(out, stored)
	return out, nil
}

// UpdatePillar replaces the stored pillar with the same UserID and ID
// and persists. Returns ErrNotFound when the pillar does not exist.
func (r *implRepository) UpdatePillar(ctx context.Context, pillar model.Pillar) (model.Pillar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(pillar.UserID, pillar.ID)
	if idx < 0 {
		return model.Pillar{}, repo.ErrNotFound
	}

	prev := r.users[pillar.UserID][idx]
	pillar.CreatedAt = prev.CreatedAt
	pillar.UpdatedAt = time.Now().UTC()
	r.users[pillar.UserID][idx] = pillar

	if err := r.saveLocked(ctx, "UpdatePillar"); err != nil {
		r.users[pillar.UserID][idx] = prev
		return model.Pillar{}, err
	}
	return pillar, nil
}

// DeletePillar removes the pillar with the given id from the user's
// collection and persists. Returns ErrNotFound when it does not exist.
func (r *implRepository) DeletePillar(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(userID, id)
	if idx < 0 {
		return repo.ErrNotFound
	}

	prev := r.users[userID]
	pillars := append(append([]model.Pillar{}, prev[:idx]...), prev[idx+1:]...)
	if len(pillars) == 0 {
		delete(r.users, userID)
	} else {
		r.users[userID] = pillars
	}

	if err := r.saveLocked(ctx, "DeletePillar"); err != nil {
		r.users[userID] = prev
		return err
	}
	return nil
}

func (r *implRepository) indexLocked(userID, id string) int {
	for i, pillar := range r.users[userID] {
		if pillar.ID == id {
			return i
		}
	}
	return -1
}
