package cmd

import (
	"log/slog"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/logsink"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/inventoryrepo"
	"restaurant/internal/adapters/out/rabbitmq"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	inventory  *inventoryrepo.GormInventoryRepository
	sink       ports.NotificationSink
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, sink ports.NotificationSink, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		inventory:  inventoryrepo.NewGormInventoryRepository(gormDB),
		sink:       sink,
		clock:      kernel.SystemClock{},
		logger:     logger,
	}
}

// NewNotificationSink publishes to RabbitMQ when an AMQP URL is configured and
// logs notifications otherwise. The returned close function releases the broker connection.
func NewNotificationSink(config Config, logger *slog.Logger) (ports.NotificationSink, func() error, error) {
	if config.AMQPURL == "" {
		logger.Info("No AMQP URL configured, notifications are logged only")
		return logsink.NewNotificationSink(logger), func() error { return nil }, nil
	}

	conn, err := rabbitmq.Dial(config.AMQPURL, logger)
	if err != nil {
		return nil, nil, err
	}
	return rabbitmq.NewNotificationSink(conn.Channel()), conn.Close, nil
}

func (c *CompositionRoot) sideEffects() commands.SideEffects {
	return commands.NewSideEffects(c.inventory, c.inventory, c.sink, c.logger)
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// kitchenReader reads through a unit of work that is never begun, so its
// repositories run on the shared connection pool.
func (c *CompositionRoot) kitchenReader() queries.KitchenReader {
	uow := c.uowFactory.Create()
	return queries.KitchenReader{
		Orders: uow.OrderRepository(),
		Menu:   uow.MenuItemRepository(),
		Tables: uow.TableRepository(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.sideEffects(), c.clock)
}

func (c *CompositionRoot) CreateAddItemsToOrderCommandHandler() commands.AddItemsToOrderCommandHandler {
	return commands.NewAddItemsToOrderCommandHandler(c.uow(), c.sideEffects(), c.clock)
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	return commands.NewRemoveOrderItemCommandHandler(c.orderUoW(), c.sideEffects(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderItemQuantityCommandHandler() commands.UpdateOrderItemQuantityCommandHandler {
	return commands.NewUpdateOrderItemQuantityCommandHandler(c.orderUoW(), c.sideEffects(), c.clock)
}

func (c *CompositionRoot) CreateMarkItemServedCommandHandler() commands.MarkItemServedCommandHandler {
	return commands.NewMarkItemServedCommandHandler(c.orderUoW(), c.sideEffects(), c.clock)
}

func (c *CompositionRoot) CreateUpdateKitchenItemStatusCommandHandler() commands.UpdateKitchenItemStatusCommandHandler {
	return commands.NewUpdateKitchenItemStatusCommandHandler(c.orderUoW(), c.sideEffects(), c.clock)
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	return commands.NewProcessPaymentCommandHandler(c.orderUoW(), services.NewPaymentFinalizer(), c.clock)
}

func (c *CompositionRoot) CreateNotifyLowStockCommandHandler() commands.NotifyLowStockCommandHandler {
	return commands.NewNotifyLowStockCommandHandler(c.inventory, c.sink, c.clock)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPrioritizedCookingQueueQueryHandler() queries.GetPrioritizedCookingQueueQueryHandler {
	return queries.NewGetPrioritizedCookingQueueQueryHandler(c.kitchenReader(), services.NewKitchenPriorityScheduler(), c.clock)
}

func (c *CompositionRoot) CreateGetKitchenDashboardGroupedQueryHandler() queries.GetKitchenDashboardGroupedQueryHandler {
	return queries.NewGetKitchenDashboardGroupedQueryHandler(c.kitchenReader(), services.NewKitchenPriorityScheduler(), c.clock)
}

func (c *CompositionRoot) CreateGetOrderForPaymentQueryHandler() queries.GetOrderForPaymentQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetOrderForPaymentQueryHandler(uow.OrderRepository(), uow.TableRepository())
}

func (c *CompositionRoot) CreateCheckMenuItemAvailabilityQueryHandler() queries.CheckMenuItemAvailabilityQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewCheckMenuItemAvailabilityQueryHandler(uow.MenuItemRepository(), c.inventory)
}

// CreateHTTPHandlers wires every use case exposed over HTTP.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:             c.CreateCreateOrderCommandHandler(),
		AddItems:                c.CreateAddItemsToOrderCommandHandler(),
		RemoveItem:              c.CreateRemoveOrderItemCommandHandler(),
		UpdateItemQuantity:      c.CreateUpdateOrderItemQuantityCommandHandler(),
		MarkItemServed:          c.CreateMarkItemServedCommandHandler(),
		UpdateKitchenItemStatus: c.CreateUpdateKitchenItemStatusCommandHandler(),
		ProcessPayment:          c.CreateProcessPaymentCommandHandler(),

		GetActiveOrders:           c.CreateGetActiveOrdersQueryHandler(),
		GetCookingQueue:           c.CreateGetPrioritizedCookingQueueQueryHandler(),
		GetKitchenDashboard:       c.CreateGetKitchenDashboardGroupedQueryHandler(),
		GetOrderForPayment:        c.CreateGetOrderForPaymentQueryHandler(),
		CheckMenuItemAvailability: c.CreateCheckMenuItemAvailabilityQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateNotifyLowStockCommandHandler(), c.config.LowStockSchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
