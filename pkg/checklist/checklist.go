// Package checklist reads and edits markdown task lists ("- [ ]" and
// "- [x]" lines) embedded in free-text descriptions.
package checklist

import (
	"regexp"
	"strings"
)

const (
	markerOpen = "- [ ]"
	markerDone = "- [x]"
)

// itemPattern captures indent, state and text of one checklist line.
// Example: "  - [x] Cut intro" yields ["  ", "x", "Cut intro"].
var itemPattern = regexp.MustCompile(`^(\s*)- \[([ xX])\] (.+)$`)

// Item is a single checklist entry parsed out of a description.
type Item struct {
	Indent string
	Done   bool
	Text   string
}

// Progress summarizes how much of a checklist is done.
type Progress struct {
	Total   int
	Done    int
	Percent float64
}

// Parse extracts checklist items from markdown. Lines inside fenced
// code blocks are skipped so a description quoting checkbox syntax
// does not grow phantom items.
func Parse(content string) []Item {
	if content == "" {
		return nil
	}

	var items []Item
	inFence := false
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		m := itemPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		items = append(items, Item{
			Indent: m[1],
			Done:   strings.EqualFold(m[2], "x"),
			Text:   strings.TrimSpace(m[3]),
		})
	}
	return items
}

// Stats counts items and completion. Percent is 0 for an empty list.
func Stats(content string) Progress {
	items := Parse(content)
	p := Progress{Total: len(items)}
	for _, it := range items {
		if it.Done {
			p.Done++
		}
	}
	if p.Total > 0 {
		p.Percent = float64(p.Done) / float64(p.Total) * 100
	}
	return p
}

// SetItem checks or unchecks every item whose text contains match
// (case-insensitive). It returns the rewritten content and how many
// items it touched; zero means nothing matched and the content comes
// back untouched.
func SetItem(content, match string, done bool) (string, int) {
	want := strings.ToLower(strings.TrimSpace(match))
	if content == "" || want == "" {
		return content, 0
	}

	marker := markerOpen
	if done {
		marker = markerDone
	}

	lines := strings.Split(content, "\n")
	count := 0
	inFence := false
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		m := itemPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if !strings.Contains(strings.ToLower(m[3]), want) {
			continue
		}
		lines[i] = m[1] + marker + " " + m[3]
		count++
	}
	if count == 0 {
		return content, 0
	}
	return strings.Join(lines, "\n"), count
}

// Complete reports whether the content holds a non-empty checklist
// with every item checked. Content without any checklist is never
// complete.
func Complete(content string) bool {
	items := Parse(content)
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if !it.Done {
			return false
		}
	}
	return true
}
