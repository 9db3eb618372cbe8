package pillar

import "creator-studio/internal/model"

// CreatePillarInput is the input for creating a pillar. Pillars are
// always scoped to one user.
type CreatePillarInput struct {
	UserID      string
	Name        string
	Description string
	Keywords    []string
	Color       string
	Tags        []string
}

// CreatePillarOutput is the output after creating a pillar.
type CreatePillarOutput struct {
	Pillar model.Pillar
}

// ListPillarsInput is the input for listing one user's pillars.
type ListPillarsInput struct {
	UserID string
}

// ListPillarsOutput is the output for listing pillars.
type ListPillarsOutput struct {
	Pillars []model.Pillar
}

// UpdatePillarInput is the input for updating a pillar. Empty fields
// keep the stored value; Keywords and Tags are replaced only when
// non-nil.
type UpdatePillarInput struct {
	UserID      string
	ID          string
	Name        string
	Description string
	Keywords    []string
	Color       string
	Tags        []string
}

// UpdatePillarOutput is the output after updating a pillar.
type UpdatePillarOutput struct {
	Pillar model.Pillar
}

// DeletePillarInput identifies the pillar to delete.
type DeletePillarInput struct {
	UserID string
	ID     string
}

// SuggestPillarsInput is the input for suggesting pillars from a
// YouTube channel. MaxVideos caps how many recent uploads are
// analyzed; zero uses the default.
type SuggestPillarsInput struct {
	UserID    string
	ChannelID string
	MaxVideos int64
}

// Suggestion is a proposed pillar produced by channel analysis or the
// starter library. Suggestions are returned for review and never
// persisted directly; accepting one goes through Create.
type Suggestion struct {
	Name        string
	Description string
	Keywords    []string
	Tags        []string
}

// Suggestion sources.
const (
	SourceChannelAnalysis = "channel-analysis"
	SourceStarterLibrary  = "starter-library"
)

// SuggestPillarsOutput is the output of a suggestion run. Source
// records whether the suggestions came from analyzing the channel or
// from the embedded starter library fallback.
type SuggestPillarsOutput struct {
	Suggestions []Suggestion
	Source      string
}
