package usecase_test

import (
	"context"
	"time"

	contentRepo "creator-studio/internal/content/repository"
	goalRepo "creator-studio/internal/goal/repository"
	"creator-studio/internal/model"
	"creator-studio/internal/schedule"
	"creator-studio/internal/schedule/usecase"
	taskRepo "creator-studio/internal/task/repository"
	"creator-studio/pkg/log"
)

// The schedule use case only reads, so the fakes just hand back their
// canned collections.

type fakeTaskRepo struct{ tasks []model.Task }

func (f *fakeTaskRepo) CreateTask(ctx context.Context, opt taskRepo.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}
func (f *fakeTaskRepo) GetOneTask(ctx context.Context, opt taskRepo.GetOneTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}
func (f *fakeTaskRepo) ListTasks(ctx context.Context, opt taskRepo.ListTasksOptions) ([]model.Task, error) {
	return f.tasks, nil
}
func (f *fakeTaskRepo) UpdateTask(ctx context.Context, t model.Task) (model.Task, error) {
	return t, nil
}
func (f *fakeTaskRepo) DeleteTask(ctx context.Context, id string) error { return nil }

type fakeContentRepo struct{ items []model.ContentItem }

func (f *fakeContentRepo) CreateItem(ctx context.Context, opt contentRepo.CreateItemOptions) (model.ContentItem, error) {
	return model.ContentItem{}, nil
}
func (f *fakeContentRepo) GetOneItem(ctx context.Context, opt contentRepo.GetOneItemOptions) (model.ContentItem, error) {
	return model.ContentItem{}, nil
}
func (f *fakeContentRepo) ListItems(ctx context.Context, opt contentRepo.ListItemsOptions) ([]model.ContentItem, error) {
	return f.items, nil
}
func (f *fakeContentRepo) UpdateItem(ctx context.Context, item model.ContentItem) (model.ContentItem, error) {
	return item, nil
}
func (f *fakeContentRepo) DeleteItem(ctx context.Context, id string) error { return nil }

type fakeGoalRepo struct{ goals []model.Goal }

func (f *fakeGoalRepo) CreateGoal(ctx context.Context, opt goalRepo.CreateGoalOptions) (model.Goal, error) {
	return model.Goal{}, nil
}
func (f *fakeGoalRepo) GetOneGoal(ctx context.Context, opt goalRepo.GetOneGoalOptions) (model.Goal, error) {
	return model.Goal{}, nil
}
func (f *fakeGoalRepo) ListGoals(ctx context.Context, opt goalRepo.ListGoalsOptions) ([]model.Goal, error) {
	return f.goals, nil
}
func (f *fakeGoalRepo) UpdateGoal(ctx context.Context, g model.Goal) (model.Goal, error) {
	return g, nil
}
func (f *fakeGoalRepo) DeleteGoal(ctx context.Context, id string) error { return nil }

func newUseCase(tasks []model.Task, items []model.ContentItem, goals []model.Goal) schedule.UseCase {
	return usecase.New(
		&fakeTaskRepo{tasks: tasks},
		&fakeContentRepo{items: items},
		&fakeGoalRepo{goals: goals},
		time.UTC,
		log.NewNoopLogger(),
	)
}
