package wizard

import (
	"errors"
	"sync"
)

var ErrSessionNotFound = errors.New("wizard session not found")

// Store holds live wizard sessions in memory. The site's funnel is
// single-writer per session; the store lock only protects the map plus the
// mutation running inside With.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Wizard
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Wizard)}
}

func (s *Store) Put(w *Wizard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[w.ID] = w
}

// Snapshot returns a copy of the session state for read-only rendering.
func (s *Store) Snapshot(id string) (Wizard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.sessions[id]
	if !ok {
		return Wizard{}, ErrSessionNotFound
	}
	return *w, nil
}

// With runs fn against the live session under the store lock.
func (s *Store) With(id string, fn func(*Wizard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(w)
}
