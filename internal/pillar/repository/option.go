package repository

// CreatePillarOptions carries the fields for creating a pillar. The
// repository assigns ID and timestamps.
type CreatePillarOptions struct {
	UserID      string
	Name        string
	Description string
	Keywords    []string
	Color       string
	Tags        []string
}

// GetOnePillarOptions filters for a single pillar lookup. Set fields
// are combined with AND. UserID is always required.
type GetOnePillarOptions struct {
	UserID string
	ID     string
	Name   string
}

// ListPillarsOptions filters the pillar listing.
type ListPillarsOptions struct {
	UserID string
}
