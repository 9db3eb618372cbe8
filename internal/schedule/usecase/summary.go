package usecase

import (
	"context"
	"time"

	"creator-studio/internal/model"
	"creator-studio/internal/schedule"
	"creator-studio/pkg/datemath"
)

// Summary aggregates the dashboard counts: today's deadlines, open
// work by state, goal progress, and everything due within the next
// seven days. Finished items are left out of the deadline counts.
func (uc *implUseCase) Summary(ctx context.Context) (schedule.SummaryOutput, error) {
	tasks, items, goals, err := uc.collect(ctx)
	if err != nil {
		return schedule.SummaryOutput{}, err
	}

	today := datemath.DateOf(time.Now(), uc.loc)
	weekEnd := today.AddDays(7)

	out := schedule.SummaryOutput{
		TasksByStatus:  map[model.TaskStatus]int{},
		ContentByStage: map[model.Stage]int{},
	}

	note := func(e schedule.Entry, ok bool) {
		if !ok || e.Completed {
			return
		}
		switch {
		case e.Date.Equal(today):
			out.DueToday++
		case today.Before(e.Date) && !weekEnd.Before(e.Date):
			out.UpcomingWeek = append(out.UpcomingWeek, e)
		}
	}

	for _, t := range tasks {
		out.TasksByStatus[t.Status]++
		if !t.Completed && t.Status != model.TaskStatusCancelled {
			out.OpenTasks++
		}
		note(uc.taskEntry(t))
	}
	for _, item := range items {
		out.ContentByStage[item.Status]++
		note(uc.contentEntry(item))
	}

	var progressSum float64
	for _, g := range goals {
		out.Goals.Total++
		if g.Achieved() {
			out.Goals.Achieved++
		}
		progressSum += g.Progress()
		note(uc.goalEntry(g))
	}
	if out.Goals.Total > 0 {
		out.Goals.AverageProgress = progressSum / float64(out.Goals.Total)
	}

	sortEntriesByDate(out.UpcomingWeek)
	return out, nil
}
