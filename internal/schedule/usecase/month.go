package usecase

import (
	"context"
	"time"

	"creator-studio/internal/schedule"
)

// Month buckets the month's entries by day of month for the calendar
// grid. Days with nothing scheduled are absent from the map.
func (uc *implUseCase) Month(ctx context.Context, year int, month time.Month) (schedule.MonthOutput, error) {
	tasks, items, goals, err := uc.collect(ctx)
	if err != nil {
		return schedule.MonthOutput{}, err
	}

	out := schedule.MonthOutput{
		Year:  year,
		Month: month,
		Days:  map[int][]schedule.Entry{},
	}
	add := func(e schedule.Entry, ok bool) {
		if !ok || e.Date.Year() != year || e.Date.Month() != month {
			return
		}
		out.Days[e.Date.Day()] = append(out.Days[e.Date.Day()], e)
	}

	for _, t := range tasks {
		add(uc.taskEntry(t))
	}
	for _, item := range items {
		add(uc.contentEntry(item))
	}
	for _, g := range goals {
		add(uc.goalEntry(g))
	}

	for _, entries := range out.Days {
		sortEntries(entries)
	}
	return out, nil
}
