package ports

import (
	"context"

	"orderops/internal/core/domain/model/backorder"
	"orderops/internal/core/domain/model/kernel"
)

// BackorderRepository defines the persistence contract for backorder line
// aggregates.
type BackorderRepository interface {
	// Add persists a new backorder line.
	Add(ctx context.Context, aggregate *backorder.Line) error

	// Update persists changes to an existing line using an optimistic
	// version check: a concurrent mutation of the row fails the update
	// with a version error so the enclosing transaction rolls back.
	Update(ctx context.Context, aggregate *backorder.Line) error

	// Get retrieves a line by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*backorder.Line, error)

	// GetBatchForUpdate retrieves all requested lines with row-level
	// locks, serializing concurrent batches that touch the same lines.
	// Every requested ID must exist or the call fails.
	GetBatchForUpdate(ctx context.Context, ids []kernel.UUID) ([]*backorder.Line, error)
}
