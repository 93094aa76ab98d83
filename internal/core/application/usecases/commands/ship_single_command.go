package commands

import (
	"errors"

	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/pkg/guard"
)

var ErrShipSingleCommandIsNotConstructed = errors.New(
	"ShipSingleCommand must be created via NewShipSingleCommand constructor",
)

// ShipSingleCommand requests shipment of one backorder line. Unlike a
// batch shipment, a single-line shipment carries no cross-seller rule.
type ShipSingleCommand struct { //nolint:recvcheck //using for validation
	lineID kernel.UUID
	actor  string

	guard guard.ConstructorGuard
}

// NewShipSingleCommand creates a command to ship one line.
// Validates that the line ID is a valid UUID and the acting user is identified.
func NewShipSingleCommand(lineID kernel.UUID, actor string) (ShipSingleCommand, error) {
	shipCommand := ShipSingleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipCommand.setLineID(lineID),
		shipCommand.setActor(actor),
	); err != nil {
		return ShipSingleCommand{}, err
	}

	return shipCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrShipSingleCommandIsNotConstructed if validation fails.
func (c ShipSingleCommand) Validate() error {
	return c.guard.Validate(ErrShipSingleCommandIsNotConstructed)
}

// LineID returns the identifier of the line to ship.
func (c ShipSingleCommand) LineID() kernel.UUID {
	return c.lineID
}

// Actor returns the user performing the shipment.
func (c ShipSingleCommand) Actor() string {
	return c.actor
}

func (c *ShipSingleCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *ShipSingleCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
