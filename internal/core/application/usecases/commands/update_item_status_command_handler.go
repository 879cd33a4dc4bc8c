package commands

import (
	"context"
	"time"
)

// UpdateItemStatusCommandHandler handles preparation-status transitions.
// The status write and its ITEM_STATUS_CHANGED change record are committed
// as one unit.
type UpdateItemStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateItemStatusCommandHandler creates a handler for status updates.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateItemStatusCommandHandler(uowFactory OrderUoWFactory) UpdateItemStatusCommandHandler {
	return UpdateItemStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update-item-status command.
func (h *UpdateItemStatusCommandHandler) Handle(ctx context.Context, cmd UpdateItemStatusCommand) error {
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

	if err = aggregate.UpdateItemStatus(cmd.ItemID(), cmd.NewStatus(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
