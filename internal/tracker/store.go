// Package tracker keeps the user's waste log and derives every
// statistics view from it on read. The log is small, so views filter
// the in-memory slice fresh each time rather than caching.
package tracker

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/appengine-ltd/sortcycle/internal/catalog"
	"github.com/appengine-ltd/sortcycle/internal/storage"
)

const logsKey = "wasteLogs"

// Entry is one logged waste action. Entries are immutable once created;
// corrections are a delete plus a new append.
type Entry struct {
	ID       uuid.UUID        `json:"id"`
	LoggedAt time.Time        `json:"logged_at"`
	Category catalog.Category `json:"category"`
}

type Store struct {
	kv   storage.KV
	now  func() time.Time
	logs []Entry
}

func NewStore(kv storage.KV) *Store {
	return NewStoreWithClock(kv, time.Now)
}

// NewStoreWithClock injects the clock so date-boundary logic is testable.
func NewStoreWithClock(kv storage.KV, now func() time.Time) *Store {
	s := &Store{kv: kv, now: now}
	s.Load()
	return s
}

// Load replaces the in-memory log with the persisted one. Missing or
// malformed data loads as an empty log, never an error.
func (s *Store) Load() {
	s.logs = nil
	data, err := s.kv.Get(logsKey)
	if err != nil {
		return
	}
	var logs []Entry
	if err := json.Unmarshal(data, &logs); err != nil {
		return
	}
	s.logs = logs
}

// Save writes the whole log back under its key. The payload is small;
// full overwrite keeps persistence trivial.
func (s *Store) Save() {
	data, err := json.Marshal(s.logs)
	if err != nil {
		return
	}
	_ = s.kv.Set(logsKey, data)
}

// Append logs a waste action at the current time and persists.
func (s *Store) Append(cat catalog.Category) Entry {
	entry := Entry{
		ID:       uuid.New(),
		LoggedAt: s.now(),
		Category: cat,
	}
	s.logs = append(s.logs, entry)
	s.Save()
	return entry
}

// DeleteAt removes the entry at position i. Out-of-range positions are
// ignored.
func (s *Store) DeleteAt(i int) {
	if i < 0 || i >= len(s.logs) {
		return
	}
	s.logs = append(s.logs[:i], s.logs[i+1:]...)
	s.Save()
}

// DeleteByID removes the entry with the given id, if present.
func (s *Store) DeleteByID(id uuid.UUID) {
	for i, entry := range s.logs {
		if entry.ID == id {
			s.logs = append(s.logs[:i], s.logs[i+1:]...)
			s.Save()
			return
		}
	}
}

// Entries returns a copy of the log in append order.
func (s *Store) Entries() []Entry {
	return append([]Entry(nil), s.logs...)
}

func (s *Store) Len() int { return len(s.logs) }
