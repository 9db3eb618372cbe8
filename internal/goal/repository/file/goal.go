package file

import (
	"context"
	"time"

	"github.com/google/uuid"

	repo "creator-studio/internal/goal/repository"
	"creator-studio/internal/model"
)

// CreateGoal appends a new goal and persists the collection. The
// repository owns id and timestamp assignment.
func (r *implRepository) CreateGoal(ctx context.Context, opt repo.CreateGoalOptions) (model.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	g := model.Goal{
		ID:          uuid.NewString(),
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    opt.Priority,
		Metric:      opt.Metric,
		Current:     opt.Current,
		Target:      opt.Target,
		DueDate:     opt.DueDate,
		Tags:        opt.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.goals = append(r.goals, g)
	if err := r.saveLocked(ctx, "CreateGoal"); err != nil {
		r.goals = r.goals[:len(r.goals)-1]
		return model.Goal{}, err
	}
	return g, nil
}

// GetOneGoal retrieves a single goal by the provided filters (AND
// condition). Returns a zero-value goal (ID == "") when not found — do
// NOT return an error for not-found.
func (r *implRepository) GetOneGoal(ctx context.Context, opt repo.GetOneGoalOptions) (model.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.goals {
		if opt.ID != "" && g.ID != opt.ID {
			continue
		}
		if opt.Title != "" && g.Title != opt.Title {
			continue
		}
		return g, nil
	}
	return model.Goal{}, nil
}

// ListGoals returns goals in insertion order, optionally filtered by
// achievement.
func (r *implRepository) ListGoals(ctx context.Context, opt repo.ListGoalsOptions) ([]model.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Goal, 0, len(r.goals))
	for _, g := range r.goals {
		if opt.Achieved != nil && g.Achieved() != *opt.Achieved {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// UpdateGoal replaces the stored goal with the same ID and persists.
// Returns ErrNotFound when the goal does not exist.
func (r *implRepository) UpdateGoal(ctx context.Context, g model.Goal) (model.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(g.ID)
	if idx < 0 {
		return model.Goal{}, repo.ErrNotFound
	}

	prev := r.goals[idx]
	g.CreatedAt = prev.CreatedAt
	g.UpdatedAt = time.Now().UTC()
	r.goals[idx] = g

	if err := r.saveLocked(ctx, "UpdateGoal"); err != nil {
		r.goals[idx] = prev
		return model.Goal{}, err
	}
	return g, nil
}

// DeleteGoal removes the goal with the given id and persists. Returns
// ErrNotFound when the goal does not exist.
func (r *implRepository) DeleteGoal(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return repo.ErrNotFound
	}

	prev := r.goals
	r.goals = append(append([]model.Goal{}, r.goals[:idx]...), r.goals[idx+1:]...)

	if err := r.saveLocked(ctx, "DeleteGoal"); err != nil {
		r.goals = prev
		return err
	}
	return nil
}

func (r *implRepository) indexLocked(id string) int {
	for i, g := range r.goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}
