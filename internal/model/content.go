package model

import "time"

// Stage is one step in the fixed content-production sequence. A
// ContentItem's Status is always one of these stages.
type Stage string

const (
	StageIdeas      Stage = "ideas"
	StagePlanning   Stage = "planning"
	StageInProgress Stage = "in-progress"
	StagePublished  Stage = "published"
)

// Stages is the production ordering. Workflow rules (auto-completion,
// next-stage due dates) are defined relative to this sequence.
var Stages = []Stage{StageIdeas, StagePlanning, StageInProgress, StagePublished}

// Index returns s's position in the production ordering, or -1 for an
// unknown stage.
func (s Stage) Index() int {
	for i, known := range Stages {
		if s == known {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool {
	return s.Index() >= 0
}

// Next returns the stage after s in the production ordering. ok is
// false when s is the last stage or unknown.
func (s Stage) Next() (next Stage, ok bool) {
	i := s.Index()
	if i < 0 || i+1 >= len(Stages) {
		return "", false
	}
	return Stages[i+1], true
}

// ContentItem is a piece of content moving through the production
// stages on the studio board.
type ContentItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    Priority  `json:"priority"`
	Status      Stage     `json:"status"`
	Pillar      string    `json:"pillar,omitempty"`
	// DueDate is the overall deadline, used when no per-stage date applies.
	DueDate       *time.Time          `json:"due_date,omitempty"`
	StageDueDates map[Stage]time.Time `json:"stage_due_dates,omitempty"`
	// StageCompletions marks finished stages. Every stage ordered before
	// Status is forced true when Status moves forward; moving backward
	// never clears entries.
	StageCompletions map[Stage]bool `json:"stage_completions,omitempty"`
	Tags             []string       `json:"tags,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
