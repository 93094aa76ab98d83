package commands

import (
	"errors"

	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/pkg/guard"
)

var (
	ErrShipBatchCommandIsNotConstructed = errors.New(
		"ShipBatchCommand must be created via NewShipBatchCommand constructor",
	)
	ErrNoSelection    = errors.New("at least one line must be selected")
	ErrActorIsRequired = errors.New("actor is required")
)

// ShipBatchCommand requests shipment of a set of backorder lines as one
// atomic unit. Either every line ships or none does.
//
// Example:
//
//	cmd, err := NewShipBatchCommand([]kernel.UUID{lineA, lineB}, "j.tanaka")
//	if err != nil {
//	    return fmt.Errorf("invalid batch: %w", err)
//	}
//
//	handler := NewShipBatchCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var rejected *BatchRejectedError
//	    if errors.As(err, &rejected) {
//	        log.Printf("batch rejected, failing lines: %v", rejected.FailedLineIDs())
//	    }
//	    return err
//	}
type ShipBatchCommand struct { //nolint:recvcheck //using for validation
	lineIDs []kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewShipBatchCommand creates a command to ship the given lines together.
// Validates that at least one line is selected, every ID is a valid UUID,
// and the acting user is identified.
func NewShipBatchCommand(lineIDs []kernel.UUID, actor string) (ShipBatchCommand, error) {
	shipCommand := ShipBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipCommand.setLineIDs(lineIDs),
		shipCommand.setActor(actor),
	); err != nil {
		return ShipBatchCommand{}, err
	}

	return shipCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrShipBatchCommandIsNotConstructed if validation fails.
func (c ShipBatchCommand) Validate() error {
	return c.guard.Validate(ErrShipBatchCommandIsNotConstructed)
}

// LineIDs returns the identifiers of the lines to ship.
func (c ShipBatchCommand) LineIDs() []kernel.UUID {
	return c.lineIDs
}

// Actor returns the user performing the shipment.
func (c ShipBatchCommand) Actor() string {
	return c.actor
}

func (c *ShipBatchCommand) setLineIDs(lineIDs []kernel.UUID) error {
	if len(lineIDs) == 0 {
		return ErrNoSelection
	}

	for _, id := range lineIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.lineIDs = lineIDs
	return nil
}

func (c *ShipBatchCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
