package commands

import (
	"context"
	"fmt"

	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/core/domain/services"
)

// BatchRejectedError is returned when a shipment batch fails pre-commit
// validation. It carries the full per-line report so callers can surface
// every failing line at once instead of the first failure only.
type BatchRejectedError struct {
	Report services.BatchReport
}

// Error describes the batch-level verdict.
func (e *BatchRejectedError) Error() string {
	return fmt.Sprintf("shipment batch rejected: %v", e.Report.Err)
}

// Unwrap exposes the batch-level cause for errors.Is matching.
func (e *BatchRejectedError) Unwrap() error {
	return e.Report.Err
}

// FailedLineIDs returns the identifiers of every line that failed validation.
func (e *BatchRejectedError) FailedLineIDs() []kernel.UUID {
	return e.Report.FailedLineIDs()
}

// ShipBatchCommandHandler orchestrates atomic shipment of a line batch.
// Locks every selected line, validates the whole batch up front, and only
// then moves quantities. A single failing line aborts the entire batch
// with no partial state.
type ShipBatchCommandHandler struct {
	uowFactory BackorderUoWFactory
}

// NewShipBatchCommandHandler creates a handler for batch shipment operations.
// Requires a BackorderUoWFactory for transactional line updates.
func NewShipBatchCommandHandler(uowFactory BackorderUoWFactory) ShipBatchCommandHandler {
	return ShipBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch shipment command.
// Loads all selected lines with row locks, runs the batch validator
// (single-seller rule plus per-line checks), and on success moves each
// line's remaining quantity to shipped within one transaction. On
// validation failure returns a BatchRejectedError carrying the complete
// per-line report; nothing is mutated.
func (h ShipBatchCommandHandler) Handle(ctx context.Context, command ShipBatchCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	backorderRepo := uow.BackorderRepository()

	lines, err := backorderRepo.GetBatchForUpdate(ctx, command.LineIDs())
	if err != nil {
		return err
	}

	report := services.NewBatchValidator().ValidateShipment(lines, true)
	if !report.OK() {
		return &BatchRejectedError{Report: report}
	}

	for _, line := range lines {
		if err := line.Ship(command.Actor()); err != nil {
			return err
		}

		if err := backorderRepo.Update(ctx, line); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
