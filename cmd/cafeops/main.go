package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/vsinha/cafeops/pkg/application/services"
	"github.com/vsinha/cafeops/pkg/infrastructure/config"
	"github.com/vsinha/cafeops/pkg/infrastructure/events"
	"github.com/vsinha/cafeops/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/cafeops/pkg/infrastructure/seed"
	"github.com/vsinha/cafeops/pkg/infrastructure/session"
	httpserver "github.com/vsinha/cafeops/pkg/interfaces/http"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config file (optional)")
		addr       = flag.String("addr", "", "Listen address, overrides config")
		noSeed     = flag.Bool("no-seed", false, "Start with empty collections instead of demo data")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.HTTP.Addr = *addr
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	menuRepo := memory.NewMenuRepository()
	orderRepo := memory.NewOrderRepository()
	tableRepo := memory.NewTableRepository()
	inventoryRepo := memory.NewInventoryRepository()
	staffRepo := memory.NewStaffRepository()
	purchaseRepo := memory.NewPurchaseOrderRepository()
	credentialRepo := memory.NewCredentialRepository()
	eventStore := events.NewInMemoryEventStore()
	sessions := session.NewStore()

	if !*noSeed {
		if err := seed.Load(seed.Repositories{
			Menu:        menuRepo,
			Tables:      tableRepo,
			Inventory:   inventoryRepo,
			Staff:       staffRepo,
			Credentials: credentialRepo,
		}); err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
		logger.Info("demo data loaded")
	}

	orderService := services.NewOrderService(orderRepo, tableRepo, eventStore, logger)
	svcs := httpserver.Services{
		Auth:      services.NewAuthService(credentialRepo, sessions),
		Cart:      services.NewCartService(menuRepo, orderService, cfg.Cafe.TaxPct, logger),
		Orders:    orderService,
		Menu:      services.NewMenuService(menuRepo),
		Tables:    services.NewTableService(tableRepo),
		Inventory: services.NewInventoryService(inventoryRepo, eventStore, logger),
		Staff:     services.NewStaffService(staffRepo),
		Purchases: services.NewPurchaseOrderService(purchaseRepo),
		Analytics: services.NewAnalyticsService(orderRepo, tableRepo, inventoryRepo),
	}

	server := httpserver.NewServer(cfg, logger, svcs, eventStore)
	if err := server.Run(); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Log.Development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
