package goal

import (
	"context"
)

//go:generate mockery --name UseCase

// UseCase defines the business logic interface for the goal domain.
type UseCase interface {
	Create(ctx context.Context, input CreateGoalInput) (CreateGoalOutput, error)
	List(ctx context.Context, input ListGoalsInput) (ListGoalsOutput, error)
	Detail(ctx context.Context, id string) (DetailGoalOutput, error)
	Update(ctx context.Context, input UpdateGoalInput) (UpdateGoalOutput, error)
	Delete(ctx context.Context, id string) error

	// Progress records a new current value for the goal's metric.
	Progress(ctx context.Context, input ProgressGoalInput) (ProgressGoalOutput, error)

	// Reschedule moves the deadline to another day. Rescheduling onto
	// the day the goal already occupies is a no-op.
	Reschedule(ctx context.Context, input RescheduleGoalInput) (RescheduleGoalOutput, error)
}
