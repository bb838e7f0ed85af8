package ports

import (
	"context"

	"github.com/liquidglass/storefront-api/internal/core/domain"
)

// Store is the persistence contract: the snapshot is the unit of read and
// write. Implementations must make Update a serialized critical section so
// concurrent read-modify-write cycles cannot lose updates.
type Store interface {
	// Read returns the current snapshot. A store that has never been written
	// returns an empty snapshot, not an error.
	Read(ctx context.Context) (*domain.Snapshot, error)
	// Write persists the whole snapshot atomically from the caller's
	// perspective.
	Write(ctx context.Context, snap *domain.Snapshot) error
	// Update runs fn against the current snapshot and persists the result in
	// one serialized read-modify-write cycle. If fn returns an error nothing
	// is written.
	Update(ctx context.Context, fn func(*domain.Snapshot) error) error
}
