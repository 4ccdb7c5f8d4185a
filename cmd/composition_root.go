package cmd

import (
	"time"

	"gorm.io/gorm"

	"oms/internal/adapters/out/postgres"
	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/application/usecases/queries"
	"oms/internal/core/domain/services"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	oracle     services.DecisionOracle
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		oracle:     services.NewRandomOracle(time.Now().UnixNano()),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) itemUoWFactory() commands.ItemUoWFactory {
	return FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrdersCommandHandler() commands.AdvanceOrdersCommandHandler {
	return commands.NewAdvanceOrdersCommandHandler(
		c.orderUoWFactory(),
		services.NewLifecycleEngine(c.oracle),
	)
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	return commands.NewProcessOrderCommandHandler(
		c.orderUoWFactory(),
		services.NewValidationPipeline(c.oracle),
	)
}

func (c *CompositionRoot) CreateSimulateProcessingCommandHandler() commands.SimulateProcessingCommandHandler {
	return commands.NewSimulateProcessingCommandHandler(
		c.orderUoWFactory(),
		c.CreateProcessOrderCommandHandler(),
		time.Sleep,
	)
}

func (c *CompositionRoot) CreateSeedItemsCommandHandler() commands.SeedItemsCommandHandler {
	return commands.NewSeedItemsCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateSeedOrdersCommandHandler() commands.SeedOrdersCommandHandler {
	return commands.NewSeedOrdersCommandHandler(c.CreateCreateOrderCommandHandler())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRecentOrdersQueryHandler() queries.GetRecentOrdersQueryHandler {
	return queries.NewGetRecentOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}
