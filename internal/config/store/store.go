// Package store provides the hierarchical settings store for qsynth.
//
// A Store wraps a Backend (an in-memory Tree or a JSON Document) and an
// optional backing file. Callers never address the backend directly; they
// take a Scope, an immutable view rooted at some group, and read typed
// values with explicit defaults:
//
//	opts := st.Group("/Options")
//	limit := opts.Int("MessagesLimitLines", 1000)
//	opts.SetValue("KnobStyle", 2)
//
// Scopes nest by value (opts.Group("Sub")), so there is no begin/end
// pairing to get wrong.
//
// Ordered lists are stored as numbered keys (Prefix1, Prefix2, ...) and
// handled by Scope.ReadList, Scope.WriteList and Scope.PruneList.
package store

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/synthfront/qsynth/internal/config/loader"
)

// Store is a settings store with an optional backing file.
type Store struct {
	mu sync.RWMutex

	backend Backend

	// Backing file; empty path means memory only.
	path   string
	format loader.Format
	fs     loader.FileSystem

	// err is the first backend write failure since the last Sync.
	err error

	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for store diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFS sets the file system used by Open, Reload and Sync.
func WithFS(fsys loader.FileSystem) Option {
	return func(s *Store) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

// New creates a memory-only store over backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		fs:      loader.DefaultFS(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewMemory creates an empty memory-only store.
func NewMemory(opts ...Option) *Store {
	return New(NewTree(), opts...)
}

// Open creates a store backed by the file at path, loading it if it
// exists. The format is chosen from the file extension.
func Open(path string, opts ...Option) (*Store, error) {
	s := New(nil, opts...)
	s.path = path
	s.format = loader.FormatFor(path)

	backend, err := s.read()
	if err != nil {
		return nil, err
	}
	s.backend = backend

	s.logger.Debug("settings store opened", "path", path, "format", s.format.String())
	return s, nil
}

// Path returns the backing file path, or "" for a memory-only store.
func (s *Store) Path() string {
	return s.path
}

// Format returns the on-disk format of the backing file.
func (s *Store) Format() loader.Format {
	return s.format
}

// Root returns a scope at the top of the tree.
func (s *Store) Root() Scope {
	return Scope{store: s}
}

// Group returns a scope rooted at key.
func (s *Store) Group(key string) Scope {
	return s.Root().Group(key)
}

// Err returns the first write failure since the last Sync.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Reload replaces the in-memory tree with the backing file contents.
func (s *Store) Reload() error {
	if s.path == "" {
		return ErrNoFile
	}

	backend, err := s.read()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.backend = backend
	s.mu.Unlock()

	s.logger.Debug("settings store reloaded", "path", s.path)
	return nil
}

// Sync writes the tree to the backing file. It reports, and clears, any
// write failure recorded since the previous Sync.
func (s *Store) Sync() error {
	s.mu.Lock()
	pending := s.err
	s.err = nil
	s.mu.Unlock()

	if pending != nil {
		return pending
	}
	if s.path == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	switch b := s.backend.(type) {
	case *Document:
		if err := s.fs.WriteFile(s.path, b.Bytes()); err != nil {
			return fmt.Errorf("writing settings file %s: %w", s.path, err)
		}
	case *Tree:
		codec, err := loader.CodecFor(s.format)
		if err != nil {
			return err
		}
		if err := loader.NewWithFS(s.fs, s.path, codec).Save(b.Data()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unsupported backend %T", ErrNoFile, s.backend)
	}

	s.logger.Debug("settings store synced", "path", s.path)
	return nil
}

func (s *Store) read() (Backend, error) {
	if s.format == loader.FormatJSON {
		data, err := loader.ReadFile(s.fs, s.path)
		if err != nil {
			return nil, err
		}
		return NewDocument(data), nil
	}

	codec, err := loader.CodecFor(s.format)
	if err != nil {
		return nil, err
	}
	tree, err := loader.NewWithFS(s.fs, s.path, codec).Load()
	if err != nil {
		return nil, err
	}
	return NewTreeWithData(tree), nil
}

func (s *Store) value(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backend.Value(key)
}

func (s *Store) setValue(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(s.backend.SetValue(key, value))
}

func (s *Store) remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(s.backend.Remove(key))
}

func (s *Store) childKeys(group string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backend.ChildKeys(group)
}

func (s *Store) childGroups(group string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backend.ChildGroups(group)
}

// record keeps the first write failure. Callers hold s.mu.
func (s *Store) record(err error) {
	if err == nil {
		return
	}
	s.logger.Warn("settings write failed", "error", err)
	if s.err == nil {
		s.err = err
	}
}
