// Package jsonfile persists the full store snapshot as one JSON document on
// disk. A single mutex serializes every read-modify-write cycle, so
// concurrent mutations (two checkouts decrementing the same stock, say)
// cannot lose updates even though the backing store is a flat file.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/liquidglass/storefront-api/internal/api/metrics"
	"github.com/liquidglass/storefront-api/internal/core/domain"
)

// Store implements ports.Store against a JSON file.
type Store struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

// New returns a Store persisting to path. The file is created lazily on the
// first write; a missing file reads as an empty snapshot.
func New(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Read returns the current snapshot.
func (s *Store) Read(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Write persists the whole snapshot.
func (s *Store) Write(ctx context.Context, snap *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(snap)
}

// Update runs fn against the current snapshot and persists the result while
// holding the store lock, making the read-modify-write cycle a serialized
// critical section. If fn fails nothing is written.
func (s *Store) Update(ctx context.Context, fn func(*domain.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}
	return s.write(snap)
}

func (s *Store) read() (*domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return emptySnapshot(), nil
		}
		return nil, fmt.Errorf("read store: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}
	normalize(&snap)
	return &snap, nil
}

// write marshals the snapshot to a sibling temp file and renames it into
// place, so a crash mid-write never leaves a truncated store behind.
func (s *Store) write(snap *domain.Snapshot) error {
	start := time.Now()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write store: %w", err)
	}

	metrics.StoreWriteDuration.Observe(time.Since(start).Seconds())
	s.log.Debug().Str("path", s.path).Int("bytes", len(data)).Msg("snapshot written")
	return nil
}

func emptySnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Products: []domain.Product{},
		Users:    []domain.User{},
		Orders:   []domain.Order{},
	}
}

// normalize keeps the top-level collections non-nil so the persisted document
// always carries all three arrays.
func normalize(snap *domain.Snapshot) {
	if snap.Products == nil {
		snap.Products = []domain.Product{}
	}
	if snap.Users == nil {
		snap.Users = []domain.User{}
	}
	if snap.Orders == nil {
		snap.Orders = []domain.Order{}
	}
}
