package queries

import (
	"errors"

	"orderops/internal/core/domain/model/backorder"
	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/pkg/guard"
)

var ErrGetOpenBackordersQueryIsNotConstructed = errors.New(
	"GetOpenBackordersQuery must be created via NewGetOpenBackordersQuery constructor",
)

// GetOpenBackordersQuery retrieves every backorder line with outstanding
// quantity, grouped by seller in rank order. This is the fulfillment
// worklist: lines that still need a shipment decision.
//
// Example:
//
//	query := NewGetOpenBackordersQuery()
//	handler := NewGetOpenBackordersQueryHandler(db)
//
//	lines, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open backorders: %w", err)
//	}
//	fmt.Printf("%d lines awaiting shipment\n", len(lines))
type GetOpenBackordersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenBackordersQuery creates a query to retrieve open backorder lines.
// This is a parameterless query over the whole worklist.
func NewGetOpenBackordersQuery() GetOpenBackordersQuery {
	return GetOpenBackordersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOpenBackordersQueryIsNotConstructed if validation fails.
func (q GetOpenBackordersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenBackordersQueryIsNotConstructed)
}

// GetOpenBackordersQueryResponse is one open line of the fulfillment
// worklist. RemainingQty and Status are derived from the quantities, not
// stored.
type GetOpenBackordersQueryResponse struct {
	ID           kernel.UUID
	SellerID     string
	SkuID        string
	OrderedQty   int
	ShippedQty   int
	StoreHeldQty int
	RemainingQty int
	Rank         int
	DelayFlag    bool
	BundleFlag   bool
	Status       backorder.Status
}
