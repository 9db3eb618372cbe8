package content

import (
	"time"

	"creator-studio/internal/model"
)

// AutoCompletePreviousStages returns a completions map where every
// stage strictly before status in the production ordering is marked
// true. Entries at or after status keep their existing value, so the
// rule is idempotent and never clears a completion when status moves
// backward. The input map is not modified.
func AutoCompletePreviousStages(status model.Stage, completions map[model.Stage]bool) map[model.Stage]bool {
	out := make(map[model.Stage]bool, len(model.Stages))
	for stage, done := range completions {
		out[stage] = done
	}

	cur := status.Index()
	if cur < 0 {
		return out
	}
	for i := 0; i < cur; i++ {
		out[model.Stages[i]] = true
	}
	return out
}

// CurrentStageDueDate resolves the date an item occupies on the
// calendar. When the item's current stage is already completed the next
// stage's date applies; otherwise the current stage's own date. Both
// cases fall back to the overall due date when no per-stage date is
// set. Returns nil for an undated item.
func CurrentStageDueDate(item model.ContentItem) *time.Time {
	stage := item.Status
	if item.StageCompletions[stage] {
		next, ok := stage.Next()
		if !ok {
			return item.DueDate
		}
		if d, ok := item.StageDueDates[next]; ok {
			return &d
		}
		return item.DueDate
	}

	if d, ok := item.StageDueDates[stage]; ok {
		return &d
	}
	return item.DueDate
}

// StageProgress counts completed stages out of the full production
// sequence.
func StageProgress(item model.ContentItem) (completed, total int) {
	total = len(model.Stages)
	for _, stage := range model.Stages {
		if item.StageCompletions[stage] {
			completed++
		}
	}
	return completed, total
}
