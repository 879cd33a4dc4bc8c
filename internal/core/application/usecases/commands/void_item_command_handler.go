package commands

import (
	"context"
	"time"
)

// VoidItemCommandHandler handles removing an item from an order.
// The item deletion and its ITEM_VOIDED change record are written in one
// transaction; the item's earlier change records are never touched.
type VoidItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewVoidItemCommandHandler creates a handler for void-item operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewVoidItemCommandHandler(uowFactory OrderUoWFactory) VoidItemCommandHandler {
	return VoidItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the void-item command.
func (h *VoidItemCommandHandler) Handle(ctx context.Context, cmd VoidItemCommand) error {
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

	if err = aggregate.VoidItem(cmd.ItemID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
