package file

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"creator-studio/internal/model"
	repo "creator-studio/internal/task/repository"
)

// CreateTask appends a new task and persists the collection. The
// repository owns id and timestamp assignment.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	task := model.Task{
		ID:          uuid.NewString(),
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    opt.Priority,
		Status:      opt.Status,
		Completed:   opt.Completed,
		DueDate:     opt.DueDate,
		Tags:        opt.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.tasks = append(r.tasks, task)
	if err := r.saveLocked(ctx, "CreateTask"); err != nil {
		r.tasks = r.tasks[:len(r.tasks)-1]
		return model.Task{}, err
	}
	return task, nil
}

// GetOneTask retrieves a single task by the provided filters (AND
// condition). Returns a zero-value task (ID == "") when not found — do
// NOT return an error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, task := range r.tasks {
		if opt.ID != "" && task.ID != opt.ID {
			continue
		}
		if opt.Title != "" && task.Title != opt.Title {
			continue
		}
		return task, nil
	}
	return model.Task{}, nil
}

// ListTasks returns tasks sorted by due date ascending with undated
// tasks last, ties broken by most recent update. Filters are optional.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		if opt.Status != "" && task.Status != opt.Status {
			continue
		}
		if opt.Completed != nil && task.Completed != *opt.Completed {
			continue
		}
		out = append(out, task)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return a.UpdatedAt.After(b.UpdatedAt)
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		default:
			return a.UpdatedAt.After(b.UpdatedAt)
		}
	})
	return out, nil
}

// UpdateTask replaces the stored task with the same ID and persists.
// Returns ErrNotFound when the task does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, task model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(task.ID)
	if idx < 0 {
		return model.Task{}, repo.ErrNotFound
	}

	prev := r.tasks[idx]
	task.CreatedAt = prev.CreatedAt
	task.UpdatedAt = time.Now().UTC()
	r.tasks[idx] = task

	if err := r.saveLocked(ctx, "UpdateTask"); err != nil {
		r.tasks[idx] = prev
		return model.Task{}, err
	}
	return task, nil
}

// DeleteTask removes the task with the given id and persists. Returns
// ErrNotFound when the task does not exist.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return repo.ErrNotFound
	}

	prev := r.tasks
	r.tasks = append(append([]model.Task{}, r.tasks[:idx]...), r.tasks[idx+1:]...)

	if err := r.saveLocked(ctx, "DeleteTask"); err != nil {
		r.tasks = prev
		return err
	}
	return nil
}

func (r *implRepository) indexLocked(id string) int {
	for i, task := range r.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}
