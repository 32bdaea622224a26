package client

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Backend is the remote surface the store depends on. *API satisfies it.
type Backend interface {
	Analyze(ctx context.Context, text string) (Record, error)
	History(ctx context.Context) ([]Record, error)
}

// Store holds the app's analysis state: the history replica, the
// in-flight analysis, and busy flags. It is an explicit, injected
// container rather than a package-level singleton, and is safe for
// concurrent use.
type Store struct {
	mu sync.Mutex

	backend Backend
	path    string // snapshot file; empty disables persistence

	history        []Record
	current        *Record
	analyzing      bool
	loadingHistory bool
}

// snapshot is the persisted subset of the state.
type snapshot struct {
	History []Record `json:"history"`
	Current *Record  `json:"currentAnalysis,omitempty"`
}

// NewStore builds a store and hydrates it from the snapshot file when
// one exists. A corrupt or missing snapshot yields an empty store.
func NewStore(backend Backend, path string) *Store {
	s := &Store{backend: backend, path: path, history: []Record{}}
	s.load()
	return s
}

// Analyze submits the composed text, prepends the returned record to the
// history replica, and makes it current. The busy flag is cleared on both
// success and failure; the error is re-raised after the reset so the
// caller can show it.
func (s *Store) Analyze(ctx context.Context, text string) (Record, error) {
	s.mu.Lock()
	s.analyzing = true
	s.mu.Unlock()

	rec, err := s.backend.Analyze(ctx, text)

	s.mu.Lock()
	s.analyzing = false
	if err != nil {
		s.mu.Unlock()
		return Record{}, err
	}
	s.history = append([]Record{rec}, s.history...)
	s.current = &rec
	s.persistLocked()
	s.mu.Unlock()
	return rec, nil
}

// FetchHistory replaces the local replica wholesale from the server.
func (s *Store) FetchHistory(ctx context.Context) error {
	s.mu.Lock()
	s.loadingHistory = true
	s.mu.Unlock()

	list, err := s.backend.History(ctx)

	s.mu.Lock()
	s.loadingHistory = false
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if list == nil {
		list = []Record{}
	}
	s.history = list
	s.persistLocked()
	s.mu.Unlock()
	return nil
}

// ClearHistory empties the local replica only. Server rows are untouched;
// the divergence is permanent and accepted.
func (s *Store) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = []Record{}
	s.persistLocked()
}

// RemoveAnalysis drops one record from the local replica only.
func (s *Store) RemoveAnalysis(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.history[:0]
	for _, r := range s.history {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.history = kept
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.persistLocked()
}

// History returns a copy of the replica.
func (s *Store) History() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.history))
	copy(out, s.history)
	return out
}

// Current returns the in-flight/most recent analysis, or nil.
func (s *Store) Current() *Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	rec := *s.current
	return &rec
}

// SetCurrent overrides the current analysis, e.g. when the user opens a
// history entry.
func (s *Store) SetCurrent(rec *Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec == nil {
		s.current = nil
	} else {
		cp := *rec
		s.current = &cp
	}
	s.persistLocked()
}

// IsAnalyzing reports whether an analysis round trip is in flight.
func (s *Store) IsAnalyzing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analyzing
}

// IsLoadingHistory reports whether a history fetch is in flight.
func (s *Store) IsLoadingHistory() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadingHistory
}

func (s *Store) load() {
	if s.path == "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return
	}
	if snap.History != nil {
		s.history = snap.History
	}
	s.current = snap.Current
}

// persistLocked snapshots the state to disk. Callers hold the mutex.
// Write errors are swallowed: the replica is a cache, losing a snapshot
// only costs offline browsing.
func (s *Store) persistLocked() {
	if s.path == "" {
		return
	}
	snap := snapshot{History: s.history, Current: s.current}
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return
	}
	_ = os.Rename(tmp, s.path)
}
