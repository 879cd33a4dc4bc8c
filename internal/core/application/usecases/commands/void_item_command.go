package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var (
	ErrVoidItemCommandIsNotConstructed = errors.New(
		"VoidItemCommand must be created via NewVoidItemCommand constructor",
	)
)

// VoidItemCommand represents a request to remove an item from an order.
// The removal is a hard delete of the item, but its identity and last name
// survive in the order's change log as an ITEM_VOIDED record.
type VoidItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewVoidItemCommand creates a command to void an item.
// Validates that both identifiers are valid UUIDs.
func NewVoidItemCommand(orderID, itemID kernel.UUID) (VoidItemCommand, error) {
	voidCommand := VoidItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		voidCommand.setOrderID(orderID),
		voidCommand.setItemID(itemID),
	); err != nil {
		return VoidItemCommand{}, err
	}

	return voidCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrVoidItemCommandIsNotConstructed if validation fails.
func (c VoidItemCommand) Validate() error {
	return c.guard.Validate(ErrVoidItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order holding the item.
func (c VoidItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to void.
func (c VoidItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *VoidItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VoidItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
