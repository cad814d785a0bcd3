package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

// KPIData is the dashboard headline row
type KPIData struct {
	OrdersToday   int             `json:"orders_today"`
	RevenueToday  decimal.Decimal `json:"revenue_today"`
	ActiveTables  int             `json:"active_tables"`
	LowStockItems int             `json:"low_stock_items"`
}

// TopSellingItem is one row of the top-sellers report
type TopSellingItem struct {
	Item     entities.MenuItem `json:"item"`
	Quantity int               `json:"quantity"`
	Revenue  decimal.Decimal   `json:"revenue"`
}

// CategorySales aggregates paid order lines per menu category. Orders sums
// line quantities, not distinct orders; the name is kept for compatibility
// with the reports screen.
type CategorySales struct {
	Category entities.MenuCategory `json:"category"`
	Sales    decimal.Decimal       `json:"sales"`
	Orders   int                   `json:"orders"`
}

// RevenueData is one day of the revenue series
type RevenueData struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// AnalyticsService derives reports by scanning the collections on demand.
// Nothing is cached or maintained incrementally; every call recomputes from
// scratch, which is cheap at dashboard scale.
type AnalyticsService struct {
	orders    repositories.OrderRepository
	tables    repositories.TableRepository
	inventory repositories.InventoryRepository
}

// NewAnalyticsService creates an analytics service
func NewAnalyticsService(orders repositories.OrderRepository, tables repositories.TableRepository, inventory repositories.InventoryRepository) *AnalyticsService {
	return &AnalyticsService{
		orders:    orders,
		tables:    tables,
		inventory: inventory,
	}
}

// sameLocalDay reports whether two instants fall on the same calendar day
// in local time
func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// KPIs computes the headline numbers: orders created today, revenue from
// today's paid orders, occupied tables, and items needing restock
func (s *AnalyticsService) KPIs() (*KPIData, error) {
	orders, err := s.orders.GetAll()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	kpis := &KPIData{RevenueToday: decimal.Zero}
	for _, order := range orders {
		if !sameLocalDay(order.CreatedAt, now) {
			continue
		}
		kpis.OrdersToday++
		if order.Status == entities.StatusPaid {
			kpis.RevenueToday = kpis.RevenueToday.Add(order.Total)
		}
	}

	tables, err := s.tables.GetAll()
	if err != nil {
		return nil, err
	}
	for _, table := range tables {
		if table.Status == entities.TableOccupied {
			kpis.ActiveTables++
		}
	}

	low, err := s.inventory.GetLowStock()
	if err != nil {
		return nil, err
	}
	kpis.LowStockItems = len(low)

	return kpis, nil
}

// TopSellingItems groups paid orders' lines by menu item, summing quantity
// and revenue, sorted by quantity descending. Ties keep first-seen order.
// A limit of zero or less defaults to 5.
func (s *AnalyticsService) TopSellingItems(limit int) ([]TopSellingItem, error) {
	if limit <= 0 {
		limit = 5
	}

	paid, err := s.orders.GetByStatus(entities.StatusPaid)
	if err != nil {
		return nil, err
	}

	var rows []TopSellingItem
	index := make(map[string]int)
	for _, order := range paid {
		for _, line := range order.Items {
			i, seen := index[line.MenuItem.ID]
			if !seen {
				index[line.MenuItem.ID] = len(rows)
				rows = append(rows, TopSellingItem{
					Item:    line.MenuItem.Clone(),
					Revenue: decimal.Zero,
				})
				i = len(rows) - 1
			}
			rows[i].Quantity += line.Quantity
			rows[i].Revenue = rows[i].Revenue.Add(line.Subtotal)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Quantity > rows[j].Quantity
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// CategorySalesReport groups paid orders' lines by menu category, summing
// revenue and quantity
func (s *AnalyticsService) CategorySalesReport() ([]CategorySales, error) {
	paid, err := s.orders.GetByStatus(entities.StatusPaid)
	if err != nil {
		return nil, err
	}

	var rows []CategorySales
	index := make(map[entities.MenuCategory]int)
	for _, order := range paid {
		for _, line := range order.Items {
			category := line.MenuItem.Category
			i, seen := index[category]
			if !seen {
				index[category] = len(rows)
				rows = append(rows, CategorySales{
					Category: category,
					Sales:    decimal.Zero,
				})
				i = len(rows) - 1
			}
			rows[i].Sales = rows[i].Sales.Add(line.Subtotal)
			rows[i].Orders += line.Quantity
		}
	}
	return rows, nil
}

// RevenueByDay returns one row per day for the last days calendar days,
// oldest first, covering paid orders only
func (s *AnalyticsService) RevenueByDay(days int) ([]RevenueData, error) {
	if days <= 0 {
		days = 7
	}

	orders, err := s.orders.GetAll()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rows := make([]RevenueData, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		row := RevenueData{
			Date:    day.Format("2006-01-02"),
			Revenue: decimal.Zero,
		}
		for _, order := range orders {
			if order.Status == entities.StatusPaid && sameLocalDay(order.CreatedAt, day) {
				row.Revenue = row.Revenue.Add(order.Total)
				row.Orders++
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
