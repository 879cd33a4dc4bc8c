package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var (
	ErrMarkKitchenViewedCommandIsNotConstructed = errors.New(
		"MarkKitchenViewedCommand must be created via NewMarkKitchenViewedCommand constructor",
	)
)

// MarkKitchenViewedCommand represents the kitchen acknowledging that it has
// looked at an order. Any change recorded before this moment stops counting
// as unseen.
type MarkKitchenViewedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkKitchenViewedCommand creates a command to mark an order as viewed
// by the kitchen. Validates that the order identifier is a valid UUID.
func NewMarkKitchenViewedCommand(orderID kernel.UUID) (MarkKitchenViewedCommand, error) {
	viewedCommand := MarkKitchenViewedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := viewedCommand.setOrderID(orderID); err != nil {
		return MarkKitchenViewedCommand{}, err
	}

	return viewedCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkKitchenViewedCommandIsNotConstructed if validation fails.
func (c MarkKitchenViewedCommand) Validate() error {
	return c.guard.Validate(ErrMarkKitchenViewedCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being acknowledged.
func (c MarkKitchenViewedCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkKitchenViewedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
