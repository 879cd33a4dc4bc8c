package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var (
	ErrSendOrderToKitchenCommandIsNotConstructed = errors.New(
		"SendOrderToKitchenCommand must be created via NewSendOrderToKitchenCommand constructor",
	)
)

// SendOrderToKitchenCommand represents a request to hand an order off to the
// kitchen. Sending is a one-way, one-time transition: a second send attempt
// is rejected by the aggregate.
type SendOrderToKitchenCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendOrderToKitchenCommand creates a command to send an order to the kitchen.
// Validates that the order identifier is a valid UUID.
func NewSendOrderToKitchenCommand(orderID kernel.UUID) (SendOrderToKitchenCommand, error) {
	sendCommand := SendOrderToKitchenCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := sendCommand.setOrderID(orderID); err != nil {
		return SendOrderToKitchenCommand{}, err
	}

	return sendCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSendOrderToKitchenCommandIsNotConstructed if validation fails.
func (c SendOrderToKitchenCommand) Validate() error {
	return c.guard.Validate(ErrSendOrderToKitchenCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to send.
func (c SendOrderToKitchenCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *SendOrderToKitchenCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
