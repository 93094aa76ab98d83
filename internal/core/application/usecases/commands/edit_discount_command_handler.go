package commands

import (
	"context"

	"github.com/shopspring/decimal"
)

// EditDiscountResult is the recomputed pricing of a line after an
// accepted discount edit.
type EditDiscountResult struct {
	UnitPrice    decimal.Decimal
	Amount       decimal.Decimal
	OverrideFlag bool
}

// EditDiscountCommandHandler applies a discount edit to one factory order
// line and returns the recomputed unit price and amount.
type EditDiscountCommandHandler struct {
	uowFactory DiscountUoWFactory
}

// NewEditDiscountCommandHandler creates a handler for discount edits.
func NewEditDiscountCommandHandler(uowFactory DiscountUoWFactory) EditDiscountCommandHandler {
	return EditDiscountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the discount edit.
// A malformed amount fails with discount.ErrInvalidDiscount and the
// stored discount is untouched. An accepted edit marks the line as
// overridden when the amount differs from the factory default that was
// applied to it.
func (h EditDiscountCommandHandler) Handle(
	ctx context.Context,
	command EditDiscountCommand,
) (EditDiscountResult, error) {
	if err := command.Validate(); err != nil {
		return EditDiscountResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return EditDiscountResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	discountRepo := uow.DiscountLineRepository()

	line, err := discountRepo.Get(ctx, command.LineID())
	if err != nil {
		return EditDiscountResult{}, err
	}

	if err := line.EditDiscount(command.RawValue()); err != nil {
		return EditDiscountResult{}, err
	}

	if err := discountRepo.Update(ctx, line); err != nil {
		return EditDiscountResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return EditDiscountResult{}, err
	}

	return EditDiscountResult{
		UnitPrice:    line.UnitPrice(),
		Amount:       line.Amount(),
		OverrideFlag: line.OverrideFlag(),
	}, nil
}
