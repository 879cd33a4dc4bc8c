package cmd

import (
	"pos/internal/adapters/out/postgres"
	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateEditItemCommandHandler() commands.EditItemCommandHandler {
	return commands.NewEditItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateVoidItemCommandHandler() commands.VoidItemCommandHandler {
	return commands.NewVoidItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateItemStatusCommandHandler() commands.UpdateItemStatusCommandHandler {
	return commands.NewUpdateItemStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSendOrderToKitchenCommandHandler() commands.SendOrderToKitchenCommandHandler {
	return commands.NewSendOrderToKitchenCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkKitchenViewedCommandHandler() commands.MarkKitchenViewedCommandHandler {
	return commands.NewMarkKitchenViewedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKitchenOrdersQueryHandler() queries.GetKitchenOrdersQueryHandler {
	return queries.NewGetKitchenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetChangeLogQueryHandler() queries.GetChangeLogQueryHandler {
	return queries.NewGetChangeLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
