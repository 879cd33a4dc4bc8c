package commands

import (
	"context"
	"time"
)

// MarkKitchenViewedCommandHandler handles kitchen view acknowledgements.
// Marking is idempotent at the domain level: each call simply advances the
// order's last viewed timestamp.
type MarkKitchenViewedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkKitchenViewedCommandHandler creates a handler for view acknowledgements.
// Requires an OrderUoWFactory for transactional persistence.
func NewMarkKitchenViewedCommandHandler(uowFactory OrderUoWFactory) MarkKitchenViewedCommandHandler {
	return MarkKitchenViewedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-kitchen-viewed command.
func (h *MarkKitchenViewedCommandHandler) Handle(ctx context.Context, cmd MarkKitchenViewedCommand) error {
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

	aggregate.MarkKitchenViewed(time.Now().UTC())

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
