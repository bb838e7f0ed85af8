package service

import (
	"context"
	"sync"

	"github.com/liquidglass/storefront-api/internal/core/domain"
)

// memStore is an in-memory ports.Store used by the service tests. It counts
// writes so tests can assert "persists exactly once" / "zero persistence".
type memStore struct {
	mu     sync.Mutex
	snap   domain.Snapshot
	writes int
}

func newMemStore(snap domain.Snapshot) *memStore {
	return &memStore{snap: snap}
}

func cloneSnapshot(s domain.Snapshot) domain.Snapshot {
	out := domain.Snapshot{
		Products: make([]domain.Product, len(s.Products)),
		Users:    make([]domain.User, len(s.Users)),
		Orders:   make([]domain.Order, len(s.Orders)),
	}
	copy(out.Products, s.Products)
	copy(out.Users, s.Users)
	copy(out.Orders, s.Orders)
	return out
}

func (m *memStore) Read(context.Context) (*domain.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := cloneSnapshot(m.snap)
	return &snap, nil
}

func (m *memStore) Write(_ context.Context, snap *domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = cloneSnapshot(*snap)
	m.writes++
	return nil
}

func (m *memStore) Update(_ context.Context, fn func(*domain.Snapshot) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := cloneSnapshot(m.snap)
	if err := fn(&snap); err != nil {
		return err
	}
	m.snap = snap
	m.writes++
	return nil
}
