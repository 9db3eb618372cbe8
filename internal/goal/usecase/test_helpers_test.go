package usecase_test

import (
	"context"
	"fmt"

	"creator-studio/internal/goal"
	"creator-studio/internal/goal/repository"
	"creator-studio/internal/goal/usecase"
	"creator-studio/internal/model"
	"creator-studio/pkg/log"
)

// fakeRepo is an in-memory Repository that counts mutating calls so
// tests can assert when persistence was skipped.
type fakeRepo struct {
	goals map[string]model.Goal
	order []string
	seq   int

	createCalls int
	updateCalls int
	deleteCalls int

	failSave bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{goals: map[string]model.Goal{}}
}

func (f *fakeRepo) seed(goals ...model.Goal) {
	for _, g := range goals {
		f.goals[g.ID] = g
		f.order = append(f.order, g.ID)
	}
}

func (f *fakeRepo) CreateGoal(ctx context.Context, opt repository.CreateGoalOptions) (model.Goal, error) {
	f.createCalls++
	if f.failSave {
		return model.Goal{}, repository.ErrFailedToSave
	}
	f.seq++
	g := model.Goal{
		ID:          fmt.Sprintf("goal-%d", f.seq),
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    opt.Priority,
		Metric:      opt.Metric,
		Current:     opt.Current,
		Target:      opt.Target,
		DueDate:     opt.DueDate,
		Tags:        opt.Tags,
	}
	f.goals[g.ID] = g
	f.order = append(f.order, g.ID)
	return g, nil
}

func (f *fakeRepo) GetOneGoal(ctx context.Context, opt repository.GetOneGoalOptions) (model.Goal, error) {
	for _, id := range f.order {
		g := f.goals[id]
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

func (f *fakeRepo) ListGoals(ctx context.Context, opt repository.ListGoalsOptions) ([]model.Goal, error) {
	out := []model.Goal{}
	for _, id := range f.order {
		g := f.goals[id]
		if opt.Achieved != nil && g.Achieved() != *opt.Achieved {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeRepo) UpdateGoal(ctx context.Context, g model.Goal) (model.Goal, error) {
	f.updateCalls++
	if f.failSave {
		return model.Goal{}, repository.ErrFailedToSave
	}
	if _, ok := f.goals[g.ID]; !ok {
		return model.Goal{}, repository.ErrNotFound
	}
	f.goals[g.ID] = g
	return g, nil
}

func (f *fakeRepo) DeleteGoal(ctx context.Context, id string) error {
	f.deleteCalls++
	if f.failSave {
		return repository.ErrFailedToSave
	}
	if _, ok := f.goals[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.goals, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func newUseCase(repo repository.Repository) goal.UseCase {
	return usecase.New(repo, log.NewNoopLogger())
}
