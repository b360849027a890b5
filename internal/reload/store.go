// Package reload keeps the current parameters document in memory and swaps
// it when the file on disk changes.
package reload

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/at-ishikawa/mnint/internal/parameters"
)

// Store holds the last successfully loaded Config. Readers never block;
// reloads are serialized.
type Store struct {
	path    string
	current atomic.Pointer[parameters.Config]

	mu        sync.Mutex
	listeners []Listener
}

// NewStore loads the document at path. A document that fails validation
// is returned as the loader's error and no Store is created.
func NewStore(path string) (*Store, error) {
	cfg, err := parameters.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parameters.Load(%s) > %w", path, err)
	}

	store := &Store{path: path}
	store.current.Store(cfg)
	return store, nil
}

func (s *Store) Path() string {
	return s.path
}

// Current returns the active Config. It must be treated as read-only.
func (s *Store) Current() *parameters.Config {
	return s.current.Load()
}

func (s *Store) Subscribe(listener Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// Reload loads the document again. On failure the active Config is kept.
// It reports whether the active Config was replaced.
func (s *Store) Reload() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := parameters.Load(s.path)
	if err != nil {
		return false, fmt.Errorf("parameters.Load(%s) > %w", s.path, err)
	}

	previous := s.current.Load()
	if *previous == *next {
		slog.Default().Debug("parameters unchanged", slog.String("path", s.path))
		return false, nil
	}
	s.current.Store(next)

	for _, listener := range s.listeners {
		listener.ParametersReloaded(previous, next)
	}
	return true, nil
}
