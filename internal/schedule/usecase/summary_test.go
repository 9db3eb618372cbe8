package usecase_test

import (
	"context"
	"testing"
	"time"

	"creator-studio/internal/model"
	"creator-studio/internal/schedule"
)

func TestSummaryCountsOpenWork(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	in := func(days int) *time.Time {
		d := now.AddDate(0, 0, days)
		return &d
	}

	tasks := []model.Task{
		{ID: "t-1", Title: "Publish teaser", Status: model.TaskStatusPending, DueDate: in(0)},
		{ID: "t-2", Title: "Cut episode", Status: model.TaskStatusInProgress, DueDate: in(3)},
		{ID: "t-3", Title: "Plan series", Status: model.TaskStatusPending, DueDate: in(10)},
		{ID: "t-4", Title: "Thumbnail", Status: model.TaskStatusCompleted, Completed: true, DueDate: in(0)},
		{ID: "t-5", Title: "Old collab", Status: model.TaskStatusCancelled},
		{ID: "t-6", Title: "Sponsor call", Status: model.TaskStatusPending, DueDate: in(7)},
		{ID: "t-7", Title: "Overdue notes", Status: model.TaskStatusPending, DueDate: in(-1)},
	}
	items := []model.ContentItem{
		{ID: "c-1", Title: "Desk setup", Status: model.StageIdeas, DueDate: in(2)},
		{ID: "c-2", Title: "Launch video", Status: model.StagePublished, DueDate: in(0)},
	}
	goals := []model.Goal{
		{ID: "g-1", Title: "10k subscribers", Target: 10000, Current: 12000, DueDate: in(1)},
		{ID: "g-2", Title: "1k watch hours", Target: 1000, Current: 500, DueDate: in(5)},
	}

	uc := newUseCase(tasks, items, goals)

	got, err := uc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	// Only t-1 is due today: the finished thumbnail task and the
	// published launch video no longer count as deadlines, and the
	// overdue task belongs to the past.
	if got.DueToday != 1 {
		t.Errorf("DueToday = %d, want 1", got.DueToday)
	}
	if got.OpenTasks != 5 {
		t.Errorf("OpenTasks = %d, want 5", got.OpenTasks)
	}

	wantStatus := map[model.TaskStatus]int{
		model.TaskStatusPending:    4,
		model.TaskStatusInProgress: 1,
		model.TaskStatusCompleted:  1,
		model.TaskStatusCancelled:  1,
	}
	for status, want := range wantStatus {
		if got.TasksByStatus[status] != want {
			t.Errorf("TasksByStatus[%s] = %d, want %d", status, got.TasksByStatus[status], want)
		}
	}
	wantStage := map[model.Stage]int{model.StageIdeas: 1, model.StagePublished: 1}
	for stage, want := range wantStage {
		if got.ContentByStage[stage] != want {
			t.Errorf("ContentByStage[%s] = %d, want %d", stage, got.ContentByStage[stage], want)
		}
	}

	if got.Goals.Total != 2 || got.Goals.Achieved != 1 {
		t.Errorf("Goals = %+v, want 2 total / 1 achieved", got.Goals)
	}
	if got.Goals.AverageProgress != 0.75 {
		t.Errorf("Goals.AverageProgress = %v, want 0.75", got.Goals.AverageProgress)
	}

	// Window is exclusive of today and inclusive of the seventh day,
	// sorted by date. The achieved goal is done and stays out.
	wantUpcoming := []struct {
		id   string
		kind schedule.Kind
	}{
		{"c-1", schedule.KindContent},
		{"t-2", schedule.KindTask},
		{"g-2", schedule.KindGoal},
		{"t-6", schedule.KindTask},
	}
	if len(got.UpcomingWeek) != len(wantUpcoming) {
		t.Fatalf("UpcomingWeek has %d entries, want %d: %+v", len(got.UpcomingWeek), len(wantUpcoming), got.UpcomingWeek)
	}
	for i, want := range wantUpcoming {
		e := got.UpcomingWeek[i]
		if e.ID != want.id || e.Kind != want.kind {
			t.Errorf("UpcomingWeek[%d] = %s %s, want %s %s", i, e.Kind, e.ID, want.kind, want.id)
		}
	}
}

func TestSummaryEmptyRepositories(t *testing.T) {
	uc := newUseCase(nil, nil, nil)

	got, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if got.DueToday != 0 || got.OpenTasks != 0 || len(got.UpcomingWeek) != 0 {
		t.Errorf("Summary() over empty data = %+v, want zero counts", got)
	}
	if got.Goals.AverageProgress != 0 {
		t.Errorf("AverageProgress = %v, want 0 when no goals exist", got.Goals.AverageProgress)
	}
	if got.TasksByStatus == nil || got.ContentByStage == nil {
		t.Errorf("histogram maps must be allocated even when empty")
	}
}
