package commands_test

import (
	"testing"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewMarkKitchenViewedCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewMarkKitchenViewedCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestMarkKitchenViewedCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewMarkKitchenViewedCommand(orderID)

	itemID := kernel.NewUUID()
	aggregate := newAggregateWithItem(t, itemID)
	require.NoError(t, aggregate.EditItem(itemID, "Tom Yum", aggregate.CreatedAt()))
	require.True(t, aggregate.HasUnseenUpdates())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkKitchenViewedCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.NotNil(t, aggregate.LastKitchenViewedAt())
	assert.False(t, aggregate.HasUnseenUpdates())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestMarkKitchenViewedCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.MarkKitchenViewedCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewMarkKitchenViewedCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrMarkKitchenViewedCommandIsNotConstructed)
}
