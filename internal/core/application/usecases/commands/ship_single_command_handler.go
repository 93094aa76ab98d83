package commands

import (
	"context"

	"orderops/internal/core/domain/model/kernel"
)

// ShipSingleCommandHandler ships one backorder line.
// Locks the line, moves its remaining quantity to shipped, and persists
// the change within a transaction. The cross-seller batch rule does not
// apply to a single line.
type ShipSingleCommandHandler struct {
	uowFactory BackorderUoWFactory
}

// NewShipSingleCommandHandler creates a handler for single-line shipments.
func NewShipSingleCommandHandler(uowFactory BackorderUoWFactory) ShipSingleCommandHandler {
	return ShipSingleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the single-line shipment command.
// Returns backorder.ErrNothingToShip when the line has no outstanding
// quantity; the line is left untouched in that case.
func (h ShipSingleCommandHandler) Handle(ctx context.Context, command ShipSingleCommand) error {
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
	if err := line.Ship(command.Actor()); err != nil {
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
