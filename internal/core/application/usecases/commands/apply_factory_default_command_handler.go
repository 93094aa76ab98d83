package commands

import (
	"context"

	"orderops/internal/core/domain/model/discount"
)

// ApplyFactoryDefaultCommandHandler registers a factory default discount.
// The default takes effect through the propagation job, which applies it
// to lines whose discount was never decided.
type ApplyFactoryDefaultCommandHandler struct {
	uowFactory DiscountUoWFactory
}

// NewApplyFactoryDefaultCommandHandler creates a handler for factory default registration.
func NewApplyFactoryDefaultCommandHandler(uowFactory DiscountUoWFactory) ApplyFactoryDefaultCommandHandler {
	return ApplyFactoryDefaultCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the FactoryDefault aggregate and upserts it.
// A negative amount fails with a value-is-invalid error.
func (h ApplyFactoryDefaultCommandHandler) Handle(ctx context.Context, command ApplyFactoryDefaultCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	setting, err := discount.NewFactoryDefault(command.FactoryID(), command.SkuID(), command.DiscountAmt())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.FactoryDefaultRepository().Upsert(ctx, setting); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
