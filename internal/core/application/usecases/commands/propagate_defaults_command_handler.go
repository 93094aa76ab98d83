package commands

import (
	"context"
	"errors"

	"orderops/internal/pkg/errs"
)

// Lines picked up per propagation sweep. Keeps each sweep's transaction
// short; the next run continues where this one stopped.
const propagateBatchSize = 100

// PropagateDefaultsCommandHandler sweeps lines with an undecided discount
// and applies the factory default configured for their factory and SKU.
// Lines without a configured default are skipped and retried next sweep.
type PropagateDefaultsCommandHandler struct {
	uowFactory DiscountUoWFactory
}

// NewPropagateDefaultsCommandHandler creates a handler for default propagation sweeps.
func NewPropagateDefaultsCommandHandler(uowFactory DiscountUoWFactory) PropagateDefaultsCommandHandler {
	return PropagateDefaultsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle runs one sweep and returns how many lines picked up a default.
func (h PropagateDefaultsCommandHandler) Handle(ctx context.Context, command PropagateDefaultsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lineRepo := uow.DiscountLineRepository()
	defaultRepo := uow.FactoryDefaultRepository()

	lines, err := lineRepo.GetLinesWithUnsetDiscount(ctx, propagateBatchSize)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, line := range lines {
		setting, err := defaultRepo.Get(ctx, line.FactoryID(), line.SkuID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return 0, err
		}

		if !line.ApplyDefaultIfUnset(setting.DiscountAmt()) {
			continue
		}

		if err := lineRepo.Update(ctx, line); err != nil {
			return 0, err
		}
		applied++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return applied, nil
}
