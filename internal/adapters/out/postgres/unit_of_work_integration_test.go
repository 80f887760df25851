package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var businessDay = time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, order_payments, dining_tables, order_sequences").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.TableRepository())
	suite.NotNil(uow1.MenuItemRepository())
	suite.NotNil(uow1.OrderNumberAllocator())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SeatOrderAtTable commits an order and the table that hosts it together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SeatOrderAtTable() {
	ctx := context.Background()

	tbl := suite.addTable("T1")
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	locked, err := uow.TableRepository().GetForUpdate(ctx, tbl.ID())
	suite.Require().NoError(err)

	number, err := uow.OrderNumberAllocator().Next(ctx, businessDay)
	suite.Require().NoError(err)
	suite.Equal(order.Number("ORD-20261016-001"), number)

	o := suite.newDineInOrder(number, locked.ID())
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(locked.AssignOrder(o.ID()))
	suite.Require().NoError(uow.TableRepository().Update(ctx, locked))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	stored, err := check.TableRepository().Get(ctx, tbl.ID())
	suite.Require().NoError(err)
	suite.Equal(table.Occupied, stored.Status())
	suite.Equal(1, stored.ActiveOrders())

	storedOrder, err := check.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(number, storedOrder.Number())
}

// TestUnitOfWork_RollbackReturnsOrderNumber checks that a rolled back order does not burn its number.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackReturnsOrderNumber() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	first, err := uow.OrderNumberAllocator().Next(ctx, businessDay)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Rollback(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	again, err := uow.OrderNumberAllocator().Next(ctx, businessDay)
	suite.Require().NoError(err)
	next, err := uow.OrderNumberAllocator().Next(ctx, businessDay)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(first, again)
	suite.Equal(order.Number("ORD-20261016-002"), next)

	other, err := suite.factory.Create().OrderNumberAllocator().Next(ctx, businessDay.AddDate(0, 0, 1))
	suite.Require().NoError(err)
	suite.Equal(order.Number("ORD-20261017-001"), other)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	tbl := suite.addTable("T2")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.newDineInOrder("ORD-20261016-010", tbl.ID())
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	_, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	tbl := suite.addTable("T3")

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	order1 := suite.newDineInOrder("ORD-20261016-021", tbl.ID())
	order2 := suite.newDineInOrder("ORD-20261016-022", tbl.ID())
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err)
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) addTable(number string) *table.Table {
	tbl, err := table.NewTable(kernel.NewUUID(), number, 4)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().TableRepository().Add(context.Background(), tbl))
	return tbl
}

func (suite *UnitOfWorkIntegrationTestSuite) newDineInOrder(number order.Number, tableID kernel.UUID) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), number, order.DineIn, &tableID, order.Customer{}, "", businessDay)
	suite.Require().NoError(err)
	_, err = o.AddItems(order.ItemLine{
		MenuItemID: kernel.NewUUID(),
		Name:       "Fried rice",
		Quantity:   2,
		UnitPrice:  decimal.NewFromInt(50000),
	})
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
