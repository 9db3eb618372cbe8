package schedule

import (
	"context"
	"time"

	"creator-studio/pkg/datemath"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ItemsForDate returns every entry occupying the given calendar
	// day, across all three collections, in deterministic order
	// (kind, then title, then id). Time-of-day never matters.
	ItemsForDate(ctx context.Context, date datemath.Date) ([]Entry, error)
	// Month returns the month's entries bucketed by day of month.
	Month(ctx context.Context, year int, month time.Month) (MonthOutput, error)
	// Summary returns the dashboard aggregation.
	Summary(ctx context.Context) (SummaryOutput, error)
}
