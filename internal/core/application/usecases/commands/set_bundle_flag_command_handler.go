package commands

import (
	"context"
)

// SetBundleFlagCommandHandler toggles the bundle marker on a backorder line.
type SetBundleFlagCommandHandler struct {
	uowFactory BackorderUoWFactory
}

// NewSetBundleFlagCommandHandler creates a handler for bundle flag changes.
func NewSetBundleFlagCommandHandler(uowFactory BackorderUoWFactory) SetBundleFlagCommandHandler {
	return SetBundleFlagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the flag change.
// Returns backorder.ErrNotPrimaryLine when the target is not the primary
// line of its order.
func (h SetBundleFlagCommandHandler) Handle(ctx context.Context, command SetBundleFlagCommand) error {
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

	line, err := backorderRepo.Get(ctx, command.LineID())
	if err != nil {
		return err
	}

	if err := line.SetBundleFlag(command.Value()); err != nil {
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
