package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var (
	ErrUpdateItemStatusCommandIsNotConstructed = errors.New(
		"UpdateItemStatusCommand must be created via NewUpdateItemStatusCommand constructor",
	)
)

// UpdateItemStatusCommand represents a request to move an item to a new
// preparation status. Transitions are unrestricted: kitchen staff may move
// an item backward (e.g. done to cooking), and a transition to the current
// status is still recorded in the change log.
type UpdateItemStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	itemID    kernel.UUID
	newStatus order.ItemStatus

	guard guard.ConstructorGuard
}

// NewUpdateItemStatusCommand creates a command to update an item's status.
// Validates that both identifiers are valid UUIDs and the status is one of
// pending, cooking, done.
func NewUpdateItemStatusCommand(
	orderID, itemID kernel.UUID,
	newStatus order.ItemStatus,
) (UpdateItemStatusCommand, error) {
	statusCommand := UpdateItemStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setItemID(itemID),
		statusCommand.setNewStatus(newStatus),
	); err != nil {
		return UpdateItemStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateItemStatusCommandIsNotConstructed if validation fails.
func (c UpdateItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order holding the item.
func (c UpdateItemStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to update.
func (c UpdateItemStatusCommand) ItemID() kernel.UUID {
	return c.itemID
}

// NewStatus returns the status the item should carry after the update.
func (c UpdateItemStatusCommand) NewStatus() order.ItemStatus {
	return c.newStatus
}

func (c *UpdateItemStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateItemStatusCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateItemStatusCommand) setNewStatus(newStatus order.ItemStatus) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
