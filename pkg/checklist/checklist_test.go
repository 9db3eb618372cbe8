package checklist_test

import (
	"strings"
	"testing"

	"creator-studio/pkg/checklist"
)

const sampleDescription = `Shoot day prep.

- [x] Charge batteries
- [ ] Format SD cards
  - [ ] Card A
- [X] Print shot list

Notes below the list.`

func TestParse(t *testing.T) {
	items := checklist.Parse(sampleDescription)
	if len(items) != 4 {
		t.Fatalf("Parse() returned %d items, want 4", len(items))
	}

	if !items[0].Done || items[0].Text != "Charge batteries" {
		t.Errorf("items[0] = %+v, want done item %q", items[0], "Charge batteries")
	}
	if items[1].Done {
		t.Error("items[1] must be open")
	}
	if items[2].Indent != "  " {
		t.Errorf("items[2].Indent = %q, want two spaces preserved", items[2].Indent)
	}
	if !items[3].Done {
		t.Error("uppercase [X] must count as done")
	}
}

func TestParseSkipsFencedCode(t *testing.T) {
	content := "- [ ] Real item\n```\n- [ ] Example inside code\n```\n- [x] Another real item"

	items := checklist.Parse(content)
	if len(items) != 2 {
		t.Fatalf("Parse() returned %d items, want 2 (code block skipped)", len(items))
	}
	for _, it := range items {
		if strings.Contains(it.Text, "Example") {
			t.Errorf("fenced code leaked item %q", it.Text)
		}
	}
}

func TestParseNoChecklist(t *testing.T) {
	if items := checklist.Parse("Plain paragraph.\nNo list here."); items != nil {
		t.Errorf("Parse() = %v, want nil for plain text", items)
	}
}

func TestStats(t *testing.T) {
	p := checklist.Stats(sampleDescription)
	if p.Total != 4 || p.Done != 2 {
		t.Errorf("Stats() = %+v, want 2 of 4 done", p)
	}
	if p.Percent != 50 {
		t.Errorf("Percent = %v, want 50", p.Percent)
	}

	if p := checklist.Stats("no list"); p.Total != 0 || p.Percent != 0 {
		t.Errorf("Stats() on plain text = %+v, want zeros", p)
	}
}

func TestSetItem(t *testing.T) {
	content, n := checklist.SetItem(sampleDescription, "format sd", true)
	if n != 1 {
		t.Fatalf("SetItem() touched %d items, want 1", n)
	}
	if !strings.Contains(content, "- [x] Format SD cards") {
		t.Error("matched item was not checked")
	}
	if !strings.Contains(content, "Notes below the list.") {
		t.Error("surrounding text must survive the rewrite")
	}
	if strings.Contains(content, "- [x] Card A") {
		t.Error("non-matching items must keep their state")
	}
}

func TestSetItemMatchesMultiple(t *testing.T) {
	content := "- [ ] Card A\n- [ ] Card B"

	updated, n := checklist.SetItem(content, "card", true)
	if n != 2 {
		t.Fatalf("SetItem() touched %d items, want 2", n)
	}
	if strings.Contains(updated, "- [ ]") {
		t.Error("every matching item must be checked")
	}
}

func TestSetItemNoMatch(t *testing.T) {
	updated, n := checklist.SetItem(sampleDescription, "color grade", true)
	if n != 0 {
		t.Errorf("SetItem() touched %d items, want 0", n)
	}
	if updated != sampleDescription {
		t.Error("no-match must leave content untouched")
	}
}

func TestSetItemUncheck(t *testing.T) {
	updated, n := checklist.SetItem(sampleDescription, "charge batteries", false)
	if n != 1 {
		t.Fatalf("SetItem() touched %d items, want 1", n)
	}
	if !strings.Contains(updated, "- [ ] Charge batteries") {
		t.Error("item was not unchecked")
	}
}

func TestComplete(t *testing.T) {
	if checklist.Complete(sampleDescription) {
		t.Error("list with open items must not be complete")
	}
	if !checklist.Complete("- [x] Only item") {
		t.Error("fully checked list must be complete")
	}
	if checklist.Complete("no list at all") {
		t.Error("content without a checklist is never complete")
	}
}
