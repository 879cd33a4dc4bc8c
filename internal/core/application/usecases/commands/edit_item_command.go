package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	ErrEditItemCommandIsNotConstructed = errors.New(
		"EditItemCommand must be created via NewEditItemCommand constructor",
	)
	ErrNewNameIsRequired = errs.NewValueIsRequiredError("newName")
)

// EditItemCommand represents a request to rename an item on an order.
// A successful rename always appends an ITEM_EDITED change record, including
// renames to the current name: the audit log records intent, not difference.
type EditItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	newName string

	guard guard.ConstructorGuard
}

// NewEditItemCommand creates a command to rename an item.
// Validates that both identifiers are valid UUIDs and the new name is not empty.
func NewEditItemCommand(orderID, itemID kernel.UUID, newName string) (EditItemCommand, error) {
	editCommand := EditItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		editCommand.setOrderID(orderID),
		editCommand.setItemID(itemID),
		editCommand.setNewName(newName),
	); err != nil {
		return EditItemCommand{}, err
	}

	return editCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditItemCommandIsNotConstructed if validation fails.
func (c EditItemCommand) Validate() error {
	return c.guard.Validate(ErrEditItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order holding the item.
func (c EditItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to rename.
func (c EditItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// NewName returns the name the item should carry after the edit.
func (c EditItemCommand) NewName() string {
	return c.newName
}

func (c *EditItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *EditItemCommand) setNewName(newName string) error {
	if newName == "" {
		return ErrNewNameIsRequired
	}

	c.newName = newName
	return nil
}
