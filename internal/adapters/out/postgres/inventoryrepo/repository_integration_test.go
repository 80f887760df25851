package inventoryrepo_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/inventoryrepo"
	"restaurant/internal/core/domain/model/inventory"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/sync/errgroup"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type InventoryRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *inventoryrepo.GormInventoryRepository
}

func (suite *InventoryRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&inventoryrepo.IngredientDTO{},
		&inventoryrepo.RecipeIngredientDTO{},
		&inventoryrepo.ConsumptionDTO{},
	))
	suite.repo = inventoryrepo.NewGormInventoryRepository(db)
}

func (suite *InventoryRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *InventoryRepositoryTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE ingredients, recipe_ingredients, stock_consumptions").Error)
}

func (suite *InventoryRepositoryTestSuite) addIngredient(name string, current, minimum int) kernel.UUID {
	id := kernel.NewUUID()
	err := suite.repo.AddIngredient(context.Background(), inventory.StockLevel{
		IngredientID: id,
		Name:         name,
		Unit:         "pcs",
		Current:      current,
		Minimum:      minimum,
	})
	suite.Require().NoError(err)
	return id
}

func (suite *InventoryRepositoryTestSuite) quantity(id kernel.UUID) int {
	var dto inventoryrepo.IngredientDTO
	suite.Require().NoError(suite.db.Take(&dto, "id = ?", id.Bytes()).Error)
	return dto.Quantity
}

func (suite *InventoryRepositoryTestSuite) consumed(itemID, ingredientID kernel.UUID) int {
	var dto inventoryrepo.ConsumptionDTO
	err := suite.db.Take(&dto, "order_item_id = ? AND ingredient_id = ?", itemID.Bytes(), ingredientID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0
	}
	suite.Require().NoError(err)
	return dto.Quantity
}

func (suite *InventoryRepositoryTestSuite) TestConsume_RecordsAgainstTheItem() {
	ctx := context.Background()
	eggs := suite.addIngredient("Eggs", 10, 2)
	item := kernel.NewUUID()

	suite.Require().NoError(suite.repo.Consume(ctx, item, eggs, 4))
	suite.Require().NoError(suite.repo.Consume(ctx, item, eggs, 2))

	suite.Equal(4, suite.quantity(eggs))
	suite.Equal(6, suite.consumed(item, eggs))
}

func (suite *InventoryRepositoryTestSuite) TestConsume_RefusesToGoNegative() {
	ctx := context.Background()
	rice := suite.addIngredient("Rice", 3, 1)
	item := kernel.NewUUID()

	err := suite.repo.Consume(ctx, item, rice, 5)

	suite.Require().ErrorIs(err, inventory.ErrInsufficientStock)
	var violation *errs.RuleViolationError
	suite.Require().True(errors.As(err, &violation))
	suite.Equal("Rice", violation.Context["ingredient"])
	suite.Equal(3, violation.Context["current"])
	suite.Equal(3, suite.quantity(rice))
	suite.Equal(0, suite.consumed(item, rice))
}

func (suite *InventoryRepositoryTestSuite) TestConsume_UnknownIngredient() {
	err := suite.repo.Consume(context.Background(), kernel.NewUUID(), kernel.NewUUID(), 1)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InventoryRepositoryTestSuite) TestConsume_RejectsNonPositiveQuantity() {
	eggs := suite.addIngredient("Eggs", 10, 2)

	err := suite.repo.Consume(context.Background(), kernel.NewUUID(), eggs, 0)

	suite.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
	suite.Equal(10, suite.quantity(eggs))
}

func (suite *InventoryRepositoryTestSuite) TestRelease_RefusedTakeRestoresNothing() {
	ctx := context.Background()
	rice := suite.addIngredient("Rice", 1, 0)
	item := kernel.NewUUID()

	suite.Require().ErrorIs(suite.repo.Consume(ctx, item, rice, 2), inventory.ErrInsufficientStock)

	restored, err := suite.repo.Release(ctx, item, rice, 0)

	suite.Require().NoError(err)
	suite.Equal(0, restored)
	suite.Equal(1, suite.quantity(rice))
}

func (suite *InventoryRepositoryTestSuite) TestRelease_KeepsRemainingPortions() {
	ctx := context.Background()
	flour := suite.addIngredient("Flour", 10, 0)
	item := kernel.NewUUID()
	suite.Require().NoError(suite.repo.Consume(ctx, item, flour, 4))

	restored, err := suite.repo.Release(ctx, item, flour, 1)
	suite.Require().NoError(err)
	suite.Equal(3, restored)
	suite.Equal(9, suite.quantity(flour))
	suite.Equal(1, suite.consumed(item, flour))

	restored, err = suite.repo.Release(ctx, item, flour, 1)
	suite.Require().NoError(err)
	suite.Equal(0, restored)
	suite.Equal(9, suite.quantity(flour))

	restored, err = suite.repo.Release(ctx, item, flour, 0)
	suite.Require().NoError(err)
	suite.Equal(1, restored)
	suite.Equal(10, suite.quantity(flour))
	suite.Equal(0, suite.consumed(item, flour))
}

func (suite *InventoryRepositoryTestSuite) TestRelease_OnlyTheItemsOwnConsumption() {
	ctx := context.Background()
	milk := suite.addIngredient("Milk", 5, 0)
	latte, flatWhite := kernel.NewUUID(), kernel.NewUUID()
	suite.Require().NoError(suite.repo.Consume(ctx, latte, milk, 2))
	suite.Require().NoError(suite.repo.Consume(ctx, flatWhite, milk, 3))

	restored, err := suite.repo.Release(ctx, latte, milk, 0)

	suite.Require().NoError(err)
	suite.Equal(2, restored)
	suite.Equal(2, suite.quantity(milk))
	suite.Equal(3, suite.consumed(flatWhite, milk))
}

func (suite *InventoryRepositoryTestSuite) TestConsume_ConcurrentConsumersNeverOverdraw() {
	ctx := context.Background()
	milk := suite.addIngredient("Milk", 5, 0)

	var succeeded, refused atomic.Int32
	var g errgroup.Group
	for range 12 {
		g.Go(func() error {
			err := suite.repo.Consume(ctx, kernel.NewUUID(), milk, 1)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, inventory.ErrInsufficientStock):
				refused.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	suite.Require().NoError(g.Wait())

	suite.Equal(int32(5), succeeded.Load())
	suite.Equal(int32(7), refused.Load())
	suite.Equal(0, suite.quantity(milk))

	var rows int64
	suite.Require().NoError(suite.db.Model(&inventoryrepo.ConsumptionDTO{}).Count(&rows).Error)
	suite.Equal(int64(5), rows)
}

func (suite *InventoryRepositoryTestSuite) TestLowStock_AtOrBelowMinimumByName() {
	ctx := context.Background()
	suite.addIngredient("Tomatoes", 20, 5)
	suite.addIngredient("Basil", 2, 2)
	suite.addIngredient("Anchovies", 0, 1)

	levels, err := suite.repo.LowStock(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(levels, 2)
	suite.Equal("Anchovies", levels[0].Name)
	suite.Equal("Basil", levels[1].Name)
	suite.Equal(2, levels[1].Minimum)
}

func (suite *InventoryRepositoryTestSuite) TestRecipe_RequirementsAndAvailability() {
	ctx := context.Background()
	flour := suite.addIngredient("Flour", 10, 0)
	cheese := suite.addIngredient("Cheese", 1, 0)
	pizza := kernel.NewUUID()

	suite.Require().NoError(suite.repo.SetRecipe(ctx, pizza, []inventory.Requirement{
		{IngredientID: flour, Quantity: 3},
		{IngredientID: cheese, Quantity: 1},
	}))

	reqs, err := suite.repo.Requirements(ctx, pizza)
	suite.Require().NoError(err)
	suite.Require().Len(reqs, 2)
	suite.Equal("Cheese", reqs[0].IngredientName)
	suite.Equal(3, reqs[1].Quantity)

	shortages, err := suite.repo.CheckAvailability(ctx, pizza, 2)
	suite.Require().NoError(err)
	suite.Require().Len(shortages, 1)
	suite.Equal("Cheese", shortages[0].IngredientName)
	suite.Equal(2, shortages[0].Required)
	suite.Equal(1, shortages[0].Missing)

	noRecipe, err := suite.repo.Requirements(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(noRecipe)

	suite.Require().NoError(suite.repo.SetRecipe(ctx, pizza, nil))
	reqs, err = suite.repo.Requirements(ctx, pizza)
	suite.Require().NoError(err)
	suite.Empty(reqs)
}

func TestInventoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryRepositoryTestSuite))
}
