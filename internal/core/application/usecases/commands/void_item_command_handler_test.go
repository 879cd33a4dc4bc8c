package commands_test

import (
	"testing"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewVoidItemCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewVoidItemCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestVoidItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()
	cmd, _ := commands.NewVoidItemCommand(orderID, itemID)

	aggregate := newAggregateWithItem(t, itemID)

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

	h := commands.NewVoidItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Empty(t, aggregate.Items())
	require.Len(t, aggregate.Changes(), 1)
	change := aggregate.Changes()[0]
	assert.Equal(t, order.ItemVoided, change.Type())
	assert.Equal(t, "Pad Thai", change.FromValue())
	assert.Nil(t, change.ToValue())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestVoidItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.VoidItemCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewVoidItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrVoidItemCommandIsNotConstructed)
}
