package task

import (
	"context"
)

//go:generate mockery --name UseCase

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, id string) error

	// Toggle flips the completed flag and keeps Status consistent with it.
	Toggle(ctx context.Context, input ToggleTaskInput) (ToggleTaskOutput, error)

	// Reschedule moves the due date to another day. Rescheduling onto the
	// day the task already occupies is a no-op.
	Reschedule(ctx context.Context, input RescheduleTaskInput) (RescheduleTaskOutput, error)

	// UpdateChecklist checks or unchecks markdown checklist items in the
	// task description. Checking the last open item completes the task.
	UpdateChecklist(ctx context.Context, input UpdateChecklistInput) (UpdateChecklistOutput, error)
}
