package usecase

import (
	"context"
	"sort"

	"creator-studio/internal/content"
	contentRepo "creator-studio/internal/content/repository"
	goalRepo "creator-studio/internal/goal/repository"
	"creator-studio/internal/model"
	"creator-studio/internal/schedule"
	taskRepo "creator-studio/internal/task/repository"
	"creator-studio/pkg/datemath"
)

// collect loads all three collections in one place so every operation
// sees a consistent snapshot of the repositories.
func (uc *implUseCase) collect(ctx context.Context) ([]model.Task, []model.ContentItem, []model.Goal, error) {
	tasks, err := uc.tasks.ListTasks(ctx, taskRepo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.collect ListTasks: %v", err)
		return nil, nil, nil, err
	}
	items, err := uc.content.ListItems(ctx, contentRepo.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.collect ListItems: %v", err)
		return nil, nil, nil, err
	}
	goals, err := uc.goals.ListGoals(ctx, goalRepo.ListGoalsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.collect ListGoals: %v", err)
		return nil, nil, nil, err
	}
	return tasks, items, goals, nil
}

// taskEntry converts a task to a schedule entry. ok is false for an
// undated task.
func (uc *implUseCase) taskEntry(t model.Task) (schedule.Entry, bool) {
	if t.DueDate == nil {
		return schedule.Entry{}, false
	}
	return schedule.Entry{
		Kind:      schedule.KindTask,
		ID:        t.ID,
		Title:     t.Title,
		Priority:  t.Priority,
		Status:    string(t.Status),
		Date:      datemath.DateOf(*t.DueDate, uc.loc),
		Completed: t.Completed,
	}, true
}

// contentEntry converts a content item to a schedule entry. The day it
// occupies is its current stage deadline, not the overall due date.
func (uc *implUseCase) contentEntry(item model.ContentItem) (schedule.Entry, bool) {
	due := content.CurrentStageDueDate(item)
	if due == nil {
		return schedule.Entry{}, false
	}
	return schedule.Entry{
		Kind:      schedule.KindContent,
		ID:        item.ID,
		Title:     item.Title,
		Priority:  item.Priority,
		Status:    string(item.Status),
		Date:      datemath.DateOf(*due, uc.loc),
		Completed: item.Status == model.StagePublished,
	}, true
}

// goalEntry converts a goal deadline to a schedule entry.
func (uc *implUseCase) goalEntry(g model.Goal) (schedule.Entry, bool) {
	if g.DueDate == nil {
		return schedule.Entry{}, false
	}
	status := "in-progress"
	if g.Achieved() {
		status = "achieved"
	}
	return schedule.Entry{
		Kind:      schedule.KindGoal,
		ID:        g.ID,
		Title:     g.Title,
		Priority:  g.Priority,
		Status:    status,
		Date:      datemath.DateOf(*g.DueDate, uc.loc),
		Completed: g.Achieved(),
	}, true
}

func kindRank(k schedule.Kind) int {
	switch k {
	case schedule.KindTask:
		return 0
	case schedule.KindContent:
		return 1
	default:
		return 2
	}
}

// sortEntries orders entries by kind, then title, then id, so a day's
// listing is stable across calls.
func sortEntries(entries []schedule.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Kind != b.Kind {
			return kindRank(a.Kind) < kindRank(b.Kind)
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	})
}

// sortEntriesByDate orders entries by day first, falling back to the
// stable kind/title/id order within a day.
func sortEntriesByDate(entries []schedule.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Kind != b.Kind {
			return kindRank(a.Kind) < kindRank(b.Kind)
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	})
}
