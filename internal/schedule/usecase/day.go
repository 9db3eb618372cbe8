package usecase

import (
	"context"

	"creator-studio/internal/schedule"
	"creator-studio/pkg/datemath"
)

// ItemsForDate returns every entry occupying the given calendar day.
// Matching is by civil date in the configured timezone; a task due at
// 23:00 and one due at 01:00 land on the same day.
func (uc *implUseCase) ItemsForDate(ctx context.Context, date datemath.Date) ([]schedule.Entry, error) {
	tasks, items, goals, err := uc.collect(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]schedule.Entry, 0)
	for _, t := range tasks {
		if e, ok := uc.taskEntry(t); ok && e.Date.Equal(date) {
			entries = append(entries, e)
		}
	}
	for _, item := range items {
		if e, ok := uc.contentEntry(item); ok && e.Date.Equal(date) {
			entries = append(entries, e)
		}
	}
	for _, g := range goals {
		if e, ok := uc.goalEntry(g); ok && e.Date.Equal(date) {
			entries = append(entries, e)
		}
	}

	sortEntries(entries)
	return entries, nil
}
