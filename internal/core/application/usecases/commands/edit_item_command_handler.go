package commands

import (
	"context"
	"time"
)

// EditItemCommandHandler handles renaming an item on an order.
// The rename and its ITEM_EDITED change record are written in one
// transaction: either both land or neither does.
type EditItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewEditItemCommandHandler creates a handler for edit-item operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewEditItemCommandHandler(uowFactory OrderUoWFactory) EditItemCommandHandler {
	return EditItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit-item command.
func (h *EditItemCommandHandler) Handle(ctx context.Context, cmd EditItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.EditItem(cmd.ItemID(), cmd.NewName(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
