// Package slotstore persists whole collections as named JSON slots under
// a data directory. Each slot holds one collection wrapped in a versioned
// envelope; loads never fail the caller: bad data degrades to the
// caller's default and is logged.
package slotstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"creator-studio/pkg/log"
)

// CurrentSchemaVersion is the envelope version written by Save.
// Bump it together with a registered migration from the previous version.
const CurrentSchemaVersion = 1

const (
	fileMode = 0o644
	dirMode  = 0o755
)

// MigrateFunc transforms a slot's raw payload from one schema version to
// the next.
type MigrateFunc func(data json.RawMessage) (json.RawMessage, error)

// envelope wraps every persisted payload with its schema version.
type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	SavedAt       time.Time       `json:"saved_at"`
	Data          json.RawMessage `json:"data"`
}

// Store reads and writes named slots below a single data directory.
type Store struct {
	dir        string
	l          log.Logger
	migrations map[string]map[int]MigrateFunc
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string, l log.Logger) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("slotstore: data dir is required")
	}
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("slotstore: create data dir: %w", err)
	}
	return &Store{
		dir:        dir,
		l:          l,
		migrations: map[string]map[int]MigrateFunc{},
	}, nil
}

// RegisterMigration installs the migration applied to slot payloads
// stored at version from, producing version from+1. Version 0 denotes
// legacy payloads written before the envelope existed; a built-in
// identity migration covers 0→1 unless a custom one is registered.
func (s *Store) RegisterMigration(slot string, from int, fn MigrateFunc) {
	if s.migrations[slot] == nil {
		s.migrations[slot] = map[int]MigrateFunc{}
	}
	s.migrations[slot][from] = fn
}

// Dir returns the data directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// Exists reports whether the slot has been persisted before. It lets
// callers tell a first run (no file, defaults are expected) from a
// degraded load of existing data.
func (s *Store) Exists(slot string) bool {
	_, err := os.Stat(s.slotPath(slot))
	return err == nil
}

func (s *Store) slotPath(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

func (s *Store) lockPath(slot string) string {
	return filepath.Join(s.dir, slot+".lock")
}

// Save serializes v into the named slot, wrapped in the current envelope.
// The write is atomic (temp file + rename) and guarded by an advisory
// file lock so concurrent processes cannot interleave partial writes.
func (s *Store) Save(ctx context.Context, slot string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("slotstore: marshal slot %q: %w", slot, err)
	}

	env := envelope{
		SchemaVersion: CurrentSchemaVersion,
		SavedAt:       time.Now().UTC(),
		Data:          data,
	}
	payload, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("slotstore: marshal envelope %q: %w", slot, err)
	}

	unlock, err := lockFile(s.lockPath(slot))
	if err != nil {
		return fmt.Errorf("slotstore: lock slot %q: %w", slot, err)
	}
	defer unlock()

	tmp, err := os.CreateTemp(s.dir, slot+"-*.tmp")
	if err != nil {
		return fmt.Errorf("slotstore: temp file for slot %q: %w", slot, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("slotstore: write slot %q: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("slotstore: close slot %q: %w", slot, err)
	}
	if err := os.Chmod(tmpPath, fileMode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("slotstore: chmod slot %q: %w", slot, err)
	}
	if err := os.Rename(tmpPath, s.slotPath(slot)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("slotstore: rename slot %q: %w", slot, err)
	}
	return nil
}

// Load reads the named slot into out and reports whether it succeeded.
// A missing slot, unreadable file, corrupt payload, missing migration
// path, or a schema version newer than this binary supports all return
// false: the caller keeps its default collection and the reason is
// logged as a warning. Load never returns an error.
func (s *Store) Load(ctx context.Context, slot string, out any) bool {
	unlock, err := lockFile(s.lockPath(slot))
	if err != nil {
		s.l.Warnf(ctx, "slotstore: lock slot %q failed, using default: %v", slot, err)
		return false
	}
	raw, err := os.ReadFile(s.slotPath(slot))
	unlockErr := unlock()
	if err != nil {
		if !os.IsNotExist(err) {
			s.l.Warnf(ctx, "slotstore: read slot %q failed, using default: %v", slot, err)
		}
		return false
	}
	if unlockErr != nil {
		s.l.Warnf(ctx, "slotstore: unlock slot %q: %v", slot, unlockErr)
	}

	version, data, ok := s.decodeEnvelope(ctx, slot, raw)
	if !ok {
		return false
	}

	if version > CurrentSchemaVersion {
		s.l.Warnf(ctx, "slotstore: slot %q has schema version %d, newer than supported %d; using default",
			slot, version, CurrentSchemaVersion)
		return false
	}

	for version < CurrentSchemaVersion {
		fn := s.migrationFor(slot, version)
		if fn == nil {
			s.l.Warnf(ctx, "slotstore: slot %q has no migration path from version %d; using default", slot, version)
			return false
		}
		migrated, err := fn(data)
		if err != nil {
			s.l.Warnf(ctx, "slotstore: migrating slot %q from version %d failed, using default: %v", slot, version, err)
			return false
		}
		data = migrated
		version++
	}

	if err := json.Unmarshal(data, out); err != nil {
		s.l.Warnf(ctx, "slotstore: slot %q payload corrupt, using default: %v", slot, err)
		return false
	}
	return true
}

// decodeEnvelope extracts the schema version and payload from raw slot
// bytes. Files written before the envelope existed decode as version 0
// with the whole file as payload.
func (s *Store) decodeEnvelope(ctx context.Context, slot string, raw []byte) (int, json.RawMessage, bool) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil {
		return env.SchemaVersion, env.Data, true
	}

	// Legacy payload: the collection was stored bare, without an envelope.
	if json.Valid(raw) {
		return 0, json.RawMessage(raw), true
	}

	s.l.Warnf(ctx, "slotstore: slot %q is not valid JSON, using default", slot)
	return 0, nil, false
}

func (s *Store) migrationFor(slot string, from int) MigrateFunc {
	if fns, ok := s.migrations[slot]; ok {
		if fn, ok := fns[from]; ok {
			return fn
		}
	}
	// Envelope v1 carries the same payload shape as legacy bare files.
	if from == 0 {
		return func(data json.RawMessage) (json.RawMessage, error) { return data, nil }
	}
	return nil
}
