package repository

import (
	"context"

	"creator-studio/internal/model"
)

// Repository groups all pillar data access operations.
type Repository interface {
	PillarRepository
}

// PillarRepository is the interface for pillar data access operations.
// Every operation is scoped to one user.
type PillarRepository interface {
	CreatePillar(ctx context.Context, opt CreatePillarOptions) (model.Pillar, error)
	GetOnePillar(ctx context.Context, opt GetOnePillarOptions) (model.Pillar, error)
	ListPillars(ctx context.Context, opt ListPillarsOptions) ([]model.Pillar, error)
	UpdatePillar(ctx context.Context, pillar model.Pillar) (model.Pillar, error)
	DeletePillar(ctx context.Context, userID, id string) error
}
