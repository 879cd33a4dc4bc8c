package commands

import (
	"context"
	"time"
)

// SendOrderToKitchenCommandHandler handles the handoff of an order to the
// kitchen. A repeated send surfaces order.ErrOrderAlreadySentToKitchen from
// the aggregate and leaves the order untouched.
type SendOrderToKitchenCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSendOrderToKitchenCommandHandler creates a handler for kitchen handoffs.
// Requires an OrderUoWFactory for transactional persistence.
func NewSendOrderToKitchenCommandHandler(uowFactory OrderUoWFactory) SendOrderToKitchenCommandHandler {
	return SendOrderToKitchenCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the send-order-to-kitchen command.
func (h *SendOrderToKitchenCommandHandler) Handle(ctx context.Context, cmd SendOrderToKitchenCommand) error {
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

	if err = aggregate.SendToKitchen(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
