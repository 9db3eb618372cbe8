package usecase_test

import (
	"context"
	"fmt"

	"creator-studio/internal/model"
	"creator-studio/internal/task"
	"creator-studio/internal/task/repository"
	"creator-studio/internal/task/usecase"
	"creator-studio/pkg/log"
)

// fakeRepo is an in-memory Repository that counts mutating calls so
// tests can assert when persistence was skipped.
type fakeRepo struct {
	tasks map[string]model.Task
	order []string
	seq   int

	createCalls int
	updateCalls int
	deleteCalls int

	failSave bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tasks: map[string]model.Task{}}
}

func (f *fakeRepo) seed(tasks ...model.Task) {
	for _, t := range tasks {
		f.tasks[t.ID] = t
		f.order = append(f.order, t.ID)
	}
}

func (f *fakeRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	f.createCalls++
	if f.failSave {
		return model.Task{}, repository.ErrFailedToSave
	}
	f.seq++
	t := model.Task{
		ID:          fmt.Sprintf("task-%d", f.seq),
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    opt.Priority,
		Status:      opt.Status,
		Completed:   opt.Completed,
		DueDate:     opt.DueDate,
		Tags:        opt.Tags,
	}
	f.tasks[t.ID] = t
	f.order = append(f.order, t.ID)
	return t, nil
}

func (f *fakeRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	for _, id := range f.order {
		t := f.tasks[id]
		if opt.ID != "" && t.ID != opt.ID {
			continue
		}
		if opt.Title != "" && t.Title != opt.Title {
			continue
		}
		return t, nil
	}
	return model.Task{}, nil
}

func (f *fakeRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	out := []model.Task{}
	for _, id := range f.order {
		t := f.tasks[id]
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeRepo) UpdateTask(ctx context.Context, t model.Task) (model.Task, error) {
	f.updateCalls++
	if f.failSave {
		return model.Task{}, repository.ErrFailedToSave
	}
	if _, ok := f.tasks[t.ID]; !ok {
		return model.Task{}, repository.ErrNotFound
	}
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeRepo) DeleteTask(ctx context.Context, id string) error {
	f.deleteCalls++
	if f.failSave {
		return repository.ErrFailedToSave
	}
	if _, ok := f.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.tasks, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func newUseCase(repo repository.Repository) task.UseCase {
	return usecase.New(repo, log.NewNoopLogger())
}
