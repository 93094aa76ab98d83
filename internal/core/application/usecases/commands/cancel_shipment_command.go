package commands

import (
	"errors"

	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand reverses the shipment of one backorder line,
// returning its shipped quantity to remaining. Lines flagged as bundle
// members require an explicit confirmation from the caller.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	lineID        kernel.UUID
	actor         string
	confirmBundle bool

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a command to cancel a line's shipment.
// confirmBundle acknowledges cancellation of a bundle-flagged line; it is
// ignored for ordinary lines.
func NewCancelShipmentCommand(lineID kernel.UUID, actor string, confirmBundle bool) (CancelShipmentCommand, error) {
	cancelCommand := CancelShipmentCommand{
		confirmBundle: confirmBundle,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setLineID(lineID),
		cancelCommand.setActor(actor),
	); err != nil {
		return CancelShipmentCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelShipmentCommandIsNotConstructed if validation fails.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// LineID returns the identifier of the line whose shipment is cancelled.
func (c CancelShipmentCommand) LineID() kernel.UUID {
	return c.lineID
}

// Actor returns the user performing the cancellation.
func (c CancelShipmentCommand) Actor() string {
	return c.actor
}

// ConfirmBundle reports whether the caller acknowledged cancelling a
// bundle-flagged line.
func (c CancelShipmentCommand) ConfirmBundle() bool {
	return c.confirmBundle
}

func (c *CancelShipmentCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *CancelShipmentCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
