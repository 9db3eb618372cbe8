package usecase

import (
	"strings"
	"time"

	"creator-studio/internal/model"
)

// coalesce returns the first non-empty string — used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// coalescePriority returns the new priority when set, else the existing one.
func (uc *implUseCase) coalescePriority(newVal, existing model.Priority) model.Priority {
	if newVal != "" {
		return newVal
	}
	return existing
}

// coalesceStatus returns the new status when set, else the existing one.
func (uc *implUseCase) coalesceStatus(newVal, existing model.TaskStatus) model.TaskStatus {
	if newVal != "" {
		return newVal
	}
	return existing
}

// normalizeTags trims entries and drops blanks and duplicates while
// keeping first-seen order.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// sameDay reports whether two instants fall on the same UTC calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
