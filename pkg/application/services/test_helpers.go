package services

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/infrastructure/events"
	"github.com/vsinha/cafeops/pkg/infrastructure/repositories/memory"
)

// testEnv wires the services against fresh in-memory repositories with a
// small known menu. Used by tests only.
type testEnv struct {
	menuRepo  *memory.MenuRepository
	orderRepo *memory.OrderRepository
	tableRepo *memory.TableRepository
	invRepo   *memory.InventoryRepository
	events    *events.InMemoryEventStore

	orders    *OrderService
	cart      *CartService
	inventory *InventoryService
	analytics *AnalyticsService
}

// newTestEnv builds an environment with menu items m1 (price 100) and
// m2 (price 50), and tables t1 and t2.
func newTestEnv() *testEnv {
	env := &testEnv{
		menuRepo:  memory.NewMenuRepository(),
		orderRepo: memory.NewOrderRepository(),
		tableRepo: memory.NewTableRepository(),
		invRepo:   memory.NewInventoryRepository(),
		events:    events.NewInMemoryEventStore(),
	}

	logger := zap.NewNop()
	env.orders = NewOrderService(env.orderRepo, env.tableRepo, env.events, logger)
	env.cart = NewCartService(env.menuRepo, env.orders, 5, logger)
	env.inventory = NewInventoryService(env.invRepo, env.events, logger)
	env.analytics = NewAnalyticsService(env.orderRepo, env.tableRepo, env.invRepo)

	menuFixtures := []entities.MenuItem{
		{ID: "m1", Name: "Espresso", Category: entities.CategoryCoffee, Price: decimal.NewFromInt(100), Available: true},
		{ID: "m2", Name: "Croissant", Category: entities.CategoryBakery, Price: decimal.NewFromInt(50), Available: true},
	}
	for i := range menuFixtures {
		if _, err := env.menuRepo.Insert(&menuFixtures[i]); err != nil {
			panic(err)
		}
	}

	tableFixtures := []entities.Table{
		{ID: "t1", Number: 1, Capacity: 4, Status: entities.TableFree},
		{ID: "t2", Number: 2, Capacity: 2, Status: entities.TableReserved},
	}
	for i := range tableFixtures {
		if _, err := env.tableRepo.Insert(&tableFixtures[i]); err != nil {
			panic(err)
		}
	}

	return env
}
