package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// AddItemCommand represents a request to append a new dish to an order.
// The new item always starts in pending status. Adding an item is not an
// audit event, so no change record is produced for it.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to append an item to an order.
// Validates that both identifiers are valid UUIDs and the name is not empty.
func NewAddItemCommand(orderID, itemID kernel.UUID, name string) (AddItemCommand, error) {
	itemCommand := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setItemID(itemID),
		itemCommand.setName(name),
	); err != nil {
		return AddItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemCommandIsNotConstructed if validation fails.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the item.
func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier allocated for the new item.
func (c AddItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the dish name for the new item.
func (c AddItemCommand) Name() string {
	return c.name
}

func (c *AddItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddItemCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
