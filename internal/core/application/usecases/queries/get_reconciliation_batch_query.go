package queries

import (
	"errors"

	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/pkg/guard"
)

var ErrGetReconciliationBatchQueryIsNotConstructed = errors.New(
	"GetReconciliationBatchQuery must be created via NewGetReconciliationBatchQuery constructor",
)

// GetReconciliationBatchQuery retrieves the current reconciliation
// working set: every line of the inbound batch under review, with the
// derived difference between counted and confirmed quantities.
type GetReconciliationBatchQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReconciliationBatchQuery creates a query over the reconciliation
// working set. This is a parameterless query; lines enter and leave the
// set when a batch is loaded and committed.
func NewGetReconciliationBatchQuery() GetReconciliationBatchQuery {
	return GetReconciliationBatchQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReconciliationBatchQueryIsNotConstructed if validation fails.
func (q GetReconciliationBatchQuery) Validate() error {
	return q.guard.Validate(ErrGetReconciliationBatchQueryIsNotConstructed)
}

// GetReconciliationBatchQueryResponse is one line of the reconciliation
// working set. Diff is confirmed minus counted: positive means stock is
// missing, negative means surplus.
type GetReconciliationBatchQueryResponse struct {
	ID                kernel.UUID
	SkuID             string
	StoreInventoryQty int
	ConfirmedQty      int
	InputQty          int
	Diff              int
	Locked            bool
	LockedBy          string
}
