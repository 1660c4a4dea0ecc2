package wizard

import (
	"errors"
	"sync"
	"testing"
)

func TestStore(t *testing.T) {
	t.Run("unknown session", func(t *testing.T) {
		s := NewStore()
		if _, err := s.Snapshot("missing"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
		if err := s.With("missing", func(*Wizard) error { return nil }); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		s := NewStore()
		w, _ := New("s1", FlowUnified, "", "")
		s.Put(w)

		snap, err := s.Snapshot("s1")
		if err != nil {
			t.Fatalf("snapshot: %v", err)
		}
		snap.Form.Name = "mutated"

		live, _ := s.Snapshot("s1")
		if live.Form.Name != "" {
			t.Fatal("snapshot mutation leaked into the store")
		}
	})

	t.Run("with mutates the live session", func(t *testing.T) {
		s := NewStore()
		w, _ := New("s1", FlowUnified, "", "")
		s.Put(w)

		err := s.With("s1", func(w *Wizard) error {
			w.Form.Email = "jane@example.com"
			return nil
		})
		if err != nil {
			t.Fatalf("with: %v", err)
		}
		snap, _ := s.Snapshot("s1")
		if snap.Form.Email != "jane@example.com" {
			t.Fatalf("mutation not applied: %+v", snap.Form)
		}
	})

	t.Run("concurrent access", func(t *testing.T) {
		s := NewStore()
		w, _ := New("s1", FlowUnified, "", "")
		s.Put(w)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = s.With("s1", func(w *Wizard) error {
					w.Form.Company = "Acme"
					return nil
				})
			}()
			go func() {
				defer wg.Done()
				_, _ = s.Snapshot("s1")
			}()
		}
		wg.Wait()
	})
}
