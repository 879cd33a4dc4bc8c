package commands

import (
	"context"
)

// AddItemCommandHandler handles appending a new item to an existing order.
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddItemCommandHandler creates a handler for add-item operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewAddItemCommandHandler(uowFactory OrderUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-item command.
// Loads the order aggregate, appends the item in pending status, and persists
// the aggregate within a transaction.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
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

	if _, err = aggregate.AddItem(cmd.ItemID(), cmd.Name()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
