package ports

import (
	"context"

	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/core/domain/model/reconciliation"
)

// ReconciliationRepository defines the persistence contract for store
// reconciliation lines.
type ReconciliationRepository interface {
	// Add persists a new reconciliation line.
	Add(ctx context.Context, aggregate *reconciliation.Line) error

	// Update persists changes to an existing line with an optimistic
	// version check.
	Update(ctx context.Context, aggregate *reconciliation.Line) error

	// Get retrieves a line by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*reconciliation.Line, error)

	// GetBatchForUpdate retrieves all requested lines with row-level
	// locks so a commit snapshots and locks them atomically. Every
	// requested ID must exist or the call fails.
	GetBatchForUpdate(ctx context.Context, ids []kernel.UUID) ([]*reconciliation.Line, error)
}
