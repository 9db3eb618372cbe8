package pillar

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create stores a new pillar for the given user.
	Create(ctx context.Context, input CreatePillarInput) (CreatePillarOutput, error)
	// List returns the user's pillars in insertion order.
	List(ctx context.Context, input ListPillarsInput) (ListPillarsOutput, error)
	// Update applies a partial update to one of the user's pillars.
	Update(ctx context.Context, input UpdatePillarInput) (UpdatePillarOutput, error)
	// Delete removes one of the user's pillars.
	Delete(ctx context.Context, input DeletePillarInput) error
	// Suggest proposes pillars from the channel's recent uploads,
	// falling back to the starter library when the channel cannot be
	// analyzed. Suggestions already covered by the user's existing
	// pillars are dropped.
	Suggest(ctx context.Context, input SuggestPillarsInput) (SuggestPillarsOutput, error)
}
