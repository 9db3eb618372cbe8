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

// mergeStageDates overlays updates on base without touching either
// input map. A zero time removes the entry for that stage.
func mergeStageDates(base, updates map[model.Stage]time.Time) map[model.Stage]time.Time {
	if updates == nil {
		return base
	}
	out := make(map[model.Stage]time.Time, len(base)+len(updates))
	for stage, d := range base {
		out[stage] = d
	}
	for stage, d := range updates {
		if d.IsZero() {
			delete(out, stage)
			continue
		}
		out[stage] = d
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// cloneStageDates copies a stage-date map so stored items never share
// map references with caller input.
func cloneStageDates(in map[model.Stage]time.Time) map[model.Stage]time.Time {
	if in == nil {
		return nil
	}
	out := make(map[model.Stage]time.Time, len(in))
	for stage, d := range in {
		out[stage] = d
	}
	return out
}

// sameDay reports whether two instants fall on the same UTC calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
