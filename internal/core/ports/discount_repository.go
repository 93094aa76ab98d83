package ports

import (
	"context"

	"orderops/internal/core/domain/model/discount"
	"orderops/internal/core/domain/model/kernel"
)

// DiscountLineRepository defines the persistence contract for factory
// order discount lines.
type DiscountLineRepository interface {
	// Add persists a new discount line.
	Add(ctx context.Context, aggregate *discount.Line) error

	// Update persists changes to an existing line with an optimistic
	// version check.
	Update(ctx context.Context, aggregate *discount.Line) error

	// Get retrieves a line by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*discount.Line, error)

	// GetLinesWithUnsetDiscount retrieves lines whose discount has not
	// been decided yet, oldest first, up to limit. Used by the default
	// propagation job.
	GetLinesWithUnsetDiscount(ctx context.Context, limit int) ([]*discount.Line, error)
}

// FactoryDefaultRepository defines the persistence contract for
// per-factory default discount settings.
type FactoryDefaultRepository interface {
	// Upsert creates or replaces the default for the setting's
	// factory and SKU pair.
	Upsert(ctx context.Context, setting *discount.FactoryDefault) error

	// Get retrieves the default for a factory and SKU pair. Returns an
	// object-not-found error when no default is configured.
	Get(ctx context.Context, factoryID string, skuID string) (*discount.FactoryDefault, error)
}
