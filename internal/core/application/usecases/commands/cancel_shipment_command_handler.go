package commands

import (
	"context"

	"orderops/internal/core/domain/model/kernel"
)

// CancelShipmentCommandHandler reverses a line's shipment.
// The shipped quantity flows back to remaining so the line can be shipped
// again later; the quantity ledger stays balanced throughout.
type CancelShipmentCommandHandler struct {
	uowFactory BackorderUoWFactory
}

// NewCancelShipmentCommandHandler creates a handler for shipment cancellations.
func NewCancelShipmentCommandHandler(uowFactory BackorderUoWFactory) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Returns backorder.ErrNothingToCancel when the line has no shipped
// quantity, and backorder.ErrBundleConfirmationRequired when the line is
// bundle-flagged and the caller has not confirmed.
func (h CancelShipmentCommandHandler) Handle(ctx context.Context, command CancelShipmentCommand) error {
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

	lines, err := backorderRepo.GetBatchForUpdate(ctx, []kernel.UUID{command.LineID()})
	if err != nil {
		return err
	}

	line := lines[0]
	if err := line.CancelShipment(command.Actor(), command.ConfirmBundle()); err != nil {
		return err
	}

	if err := backorderRepo.Update(ctx, line); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
