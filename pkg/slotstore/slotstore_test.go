package slotstore_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"creator-studio/pkg/log"
	"creator-studio/pkg/slotstore"
)

type record struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Due   *time.Time `json:"due,omitempty"`
}

func newStore(t *testing.T) *slotstore.Store {
	t.Helper()
	s, err := slotstore.New(t.TempDir(), log.NewNoopLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	due := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)
	in := []record{
		{ID: "a", Title: "write script"},
		{ID: "b", Title: "record video", Due: &due},
	}
	if err := s.Save(ctx, "tasks", in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var out []record
	if !s.Load(ctx, "tasks", &out) {
		t.Fatal("Load() = false, want true")
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip mismatch:\n in: %+v\nout: %+v", in, out)
	}
}

func TestLoadMissingSlot(t *testing.T) {
	s := newStore(t)

	out := []record{{ID: "default"}}
	if s.Load(context.Background(), "never-saved", &out) {
		t.Fatal("Load() = true for missing slot, want false")
	}
	// The caller's default must survive untouched.
	if len(out) != 1 || out[0].ID != "default" {
		t.Errorf("default collection modified: %+v", out)
	}
}

func TestLoadCorruptSlot(t *testing.T) {
	dir := t.TempDir()
	s, err := slotstore.New(dir, log.NewNoopLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "tasks.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	var out []record
	if s.Load(context.Background(), "tasks", &out) {
		t.Fatal("Load() = true for corrupt slot, want false")
	}
}

func TestLoadNewerSchemaVersion(t *testing.T) {
	dir := t.TempDir()
	s, err := slotstore.New(dir, log.NewNoopLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	payload := []byte(`{"schema_version": 99, "saved_at": "2024-01-01T00:00:00Z", "data": []}`)
	if err := os.WriteFile(filepath.Join(dir, "tasks.json"), payload, 0o644); err != nil {
		t.Fatalf("write future file: %v", err)
	}

	var out []record
	if s.Load(context.Background(), "tasks", &out) {
		t.Fatal("Load() = true for future schema version, want false")
	}
}

func TestLoadLegacyBarePayload(t *testing.T) {
	dir := t.TempDir()
	s, err := slotstore.New(dir, log.NewNoopLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Files written before the envelope existed hold the collection bare.
	legacy := []byte(`[{"id":"a","title":"old task"}]`)
	if err := os.WriteFile(filepath.Join(dir, "tasks.json"), legacy, 0o644); err != nil {
		t.Fatalf("write legacy file: %v", err)
	}

	var out []record
	if !s.Load(context.Background(), "tasks", &out) {
		t.Fatal("Load() = false for legacy payload, want true")
	}
	if len(out) != 1 || out[0].ID != "a" || out[0].Title != "old task" {
		t.Errorf("legacy payload = %+v", out)
	}
}

func TestRegisteredMigrationRuns(t *testing.T) {
	dir := t.TempDir()
	s, err := slotstore.New(dir, log.NewNoopLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Version 0 records used "name" instead of "title".
	s.RegisterMigration("tasks", 0, func(data json.RawMessage) (json.RawMessage, error) {
		var old []map[string]any
		if err := json.Unmarshal(data, &old); err != nil {
			return nil, err
		}
		for _, item := range old {
			if name, ok := item["name"]; ok {
				item["title"] = name
				delete(item, "name")
			}
		}
		return json.Marshal(old)
	})

	legacy := []byte(`[{"id":"a","name":"renamed field"}]`)
	if err := os.WriteFile(filepath.Join(dir, "tasks.json"), legacy, 0o644); err != nil {
		t.Fatalf("write legacy file: %v", err)
	}

	var out []record
	if !s.Load(context.Background(), "tasks", &out) {
		t.Fatal("Load() = false, want true")
	}
	if len(out) != 1 || out[0].Title != "renamed field" {
		t.Errorf("migrated payload = %+v", out)
	}
}

func TestSaveOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	s, err := slotstore.New(dir, log.NewNoopLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	if err := s.Save(ctx, "tasks", []record{{ID: "first"}}); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	if err := s.Save(ctx, "tasks", []record{{ID: "second"}}); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	var out []record
	if !s.Load(ctx, "tasks", &out) {
		t.Fatal("Load() = false, want true")
	}
	if len(out) != 1 || out[0].ID != "second" {
		t.Errorf("slot content = %+v, want latest write", out)
	}

	// No temp files may linger after successful writes.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("leftover temp file %q", e.Name())
		}
	}
}
