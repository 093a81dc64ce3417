// Package cas implements persistent storage of check records.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/recheck/internal/core/domain"
	"go.trai.ch/recheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ResultStore       = (*Store)(nil)
	_ ports.ResultStoreOpener = (*Opener)(nil)
)

// Opener implements ports.ResultStoreOpener with Stores under <root>/.recheck.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open loads the store of the manifest root.
func (o *Opener) Open(root string) (ports.ResultStore, error) {
	return NewStore(domain.ResultsPath(root))
}

// Store implements ports.ResultStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.CheckRecord
}

// NewStore creates a new ResultStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.CheckRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path)
	}

	// Records written by other versions may carry statuses this one does not know.
	for name, r := range s.cache {
		r.Puzzle = name
		r.Status = domain.NormalizeStatus(string(r.Status))
		s.cache[name] = r
	}

	return nil
}

// save writes the cache to disk. The caller must hold the lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Get retrieves the record for a given puzzle name.
func (s *Store) Get(puzzle string) (*domain.CheckRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[puzzle]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record and flushes the file.
func (s *Store) Put(record domain.CheckRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[record.Puzzle] = record
	return s.save()
}

// All returns every record sorted by puzzle name.
func (s *Store) All() ([]domain.CheckRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.CheckRecord, 0, len(s.cache))
	for _, r := range s.cache {
		records = append(records, r)
	}
	slices.SortFunc(records, func(a, b domain.CheckRecord) int {
		return strings.Compare(a.Puzzle, b.Puzzle)
	})
	return records, nil
}

// Clear drops every record and removes the backing file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = make(map[string]domain.CheckRecord)
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}
	return nil
}
