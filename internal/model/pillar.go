package model

import "time"

// TagAISuggested marks pillars produced by channel analysis rather
// than entered by hand.
const TagAISuggested = "ai-suggested"

// Pillar is a user-defined content theme used to group ideas and
// videos. Pillars are scoped to one user. Keywords hold the terms the
// pillar clusters around, filled by hand or by channel analysis.
type Pillar struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Keywords    []string  `json:"keywords,omitempty"`
	Color       string    `json:"color,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasTag reports whether the pillar carries the given tag.
func (p Pillar) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
