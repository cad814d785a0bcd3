package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vsinha/cafeops/pkg/application/services"
	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/infrastructure/events"
	"github.com/vsinha/cafeops/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/cafeops/pkg/infrastructure/seed"
)

// A scripted walk through a cafe service: seed the demo data, build a cart,
// place the order, run it through the kitchen, take payment and print the
// day's numbers. Run it with `go run ./example`.
func main() {
	menuRepo := memory.NewMenuRepository()
	orderRepo := memory.NewOrderRepository()
	tableRepo := memory.NewTableRepository()
	inventoryRepo := memory.NewInventoryRepository()
	staffRepo := memory.NewStaffRepository()
	credentialRepo := memory.NewCredentialRepository()
	eventStore := events.NewInMemoryEventStore()
	logger := zap.NewNop()

	if err := seed.Load(seed.Repositories{
		Menu:        menuRepo,
		Tables:      tableRepo,
		Inventory:   inventoryRepo,
		Staff:       staffRepo,
		Credentials: credentialRepo,
	}); err != nil {
		fmt.Printf("Failed to seed demo data: %v\n", err)
		return
	}

	orders := services.NewOrderService(orderRepo, tableRepo, eventStore, logger)
	cart := services.NewCartService(menuRepo, orders, 5, logger)
	analytics := services.NewAnalyticsService(orderRepo, tableRepo, inventoryRepo)

	fmt.Println("☕ Cafe demo")
	fmt.Println()

	menu, _ := menuRepo.GetAll()
	tables, _ := tableRepo.GetAll()
	fmt.Printf("Seeded %d menu items, %d tables\n", len(menu), len(tables))

	// Build a cart for the first table: two of the first item, one of the
	// second, with a 10% discount for a regular.
	const session = "demo"
	cart.SetTable(session, tables[0].ID)
	if _, err := cart.AddItem(session, menu[0].ID, 2); err != nil {
		fmt.Printf("Failed to add item: %v\n", err)
		return
	}
	if _, err := cart.AddItem(session, menu[1].ID, 1); err != nil {
		fmt.Printf("Failed to add item: %v\n", err)
		return
	}
	current := cart.ApplyGlobalDiscount(session, 10)
	fmt.Printf("Cart: %d lines, subtotal %s, discount %s, tax %s, total %s\n",
		len(current.Items), current.Subtotal, current.Discount, current.Tax, current.Total)

	order, err := cart.Checkout(session)
	if err != nil {
		fmt.Printf("Checkout failed: %v\n", err)
		return
	}
	fmt.Printf("Placed order %s for table %s\n", order.ID, order.TableID)

	// Run the order through the kitchen and settle it.
	for {
		advanced, err := orders.AdvanceKitchen(order.ID)
		if err != nil {
			break
		}
		fmt.Printf("  → %s\n", advanced.Status)
		if advanced.Status == entities.StatusServed {
			break
		}
	}
	if _, err := orders.Pay(order.ID, entities.PaymentCard); err != nil {
		fmt.Printf("Payment failed: %v\n", err)
		return
	}
	fmt.Println("  → paid, table freed")
	fmt.Println()

	kpis, _ := analytics.KPIs()
	fmt.Println("📊 Today so far:")
	fmt.Printf("  Orders: %d\n", kpis.OrdersToday)
	fmt.Printf("  Revenue: %s\n", kpis.RevenueToday)
	fmt.Printf("  Occupied tables: %d\n", kpis.ActiveTables)
	fmt.Printf("  Items needing restock: %d\n", kpis.LowStockItems)

	top, _ := analytics.TopSellingItems(3)
	for _, row := range top {
		fmt.Printf("  Top seller: %s x%d (%s)\n", row.Item.Name, row.Quantity, row.Revenue)
	}
}
