// Package http exposes the dashboard over a JSON API. Handlers bind
// requests, call the application services and translate errors; all domain
// rules live below this layer.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vsinha/cafeops/pkg/application/services"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
	"github.com/vsinha/cafeops/pkg/infrastructure/config"
	"github.com/vsinha/cafeops/pkg/infrastructure/events"
)

// Services bundles everything the handlers call
type Services struct {
	Auth      *services.AuthService
	Cart      *services.CartService
	Orders    *services.OrderService
	Menu      *services.MenuService
	Tables    *services.TableService
	Inventory *services.InventoryService
	Staff     *services.StaffService
	Purchases *services.PurchaseOrderService
	Analytics *services.AnalyticsService
}

// Server is the HTTP presentation surface
type Server struct {
	config   *config.Config
	logger   *zap.Logger
	router   *gin.Engine
	services Services
	events   *events.InMemoryEventStore
}

// NewServer creates the server with routes wired
func NewServer(cfg *config.Config, logger *zap.Logger, svcs Services, store *events.InMemoryEventStore) *Server {
	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	s := &Server{
		config:   cfg,
		logger:   logger,
		router:   router,
		services: svcs,
		events:   store,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", s.login)
			auth.GET("/me", s.currentUser)
			auth.POST("/logout", s.logout)
		}

		menu := v1.Group("/menu")
		{
			menu.GET("", s.listMenu)
			menu.GET("/categories", s.listCategories)
			menu.GET("/:id", s.getMenuItem)
			menu.POST("", s.createMenuItem)
			menu.PUT("/:id", s.updateMenuItem)
			menu.PUT("/:id/availability", s.toggleMenuItem)
			menu.DELETE("/:id", s.deleteMenuItem)
		}

		tables := v1.Group("/tables")
		{
			tables.GET("", s.listTables)
			tables.GET("/available", s.listAvailableTables)
			tables.GET("/:id", s.getTable)
			tables.PUT("/:id", s.editTable)
			tables.PUT("/:id/status", s.overrideTable)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", s.getCart)
			cart.PUT("/table", s.setCartTable)
			cart.POST("/items", s.addCartItem)
			cart.PUT("/items/:lineId", s.updateCartItem)
			cart.DELETE("/items/:lineId", s.removeCartItem)
			cart.PUT("/discount", s.applyCartDiscount)
			cart.DELETE("", s.clearCart)
			cart.POST("/checkout", s.checkout)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", s.listOrders)
			orders.GET("/:id", s.getOrder)
			orders.POST("", s.createOrder)
			orders.PUT("/:id/status", s.updateOrderStatus)
			orders.PUT("/:id/advance", s.advanceOrder)
			orders.PUT("/:id/pay", s.payOrder)
			orders.DELETE("/:id", s.deleteOrder)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.GET("", s.listInventory)
			inventory.GET("/low-stock", s.listLowStock)
			inventory.GET("/:id", s.getInventoryItem)
			inventory.POST("", s.createInventoryItem)
			inventory.PUT("/:id", s.updateInventoryItem)
			inventory.PUT("/:id/adjust", s.adjustStock)
			inventory.DELETE("/:id", s.deleteInventoryItem)
		}

		staff := v1.Group("/staff")
		{
			staff.GET("", s.listStaff)
			staff.GET("/:id", s.getStaff)
			staff.POST("", s.createStaff)
			staff.PUT("/:id", s.updateStaff)
			staff.PUT("/:id/active", s.toggleStaff)
			staff.DELETE("/:id", s.deleteStaff)
		}

		purchases := v1.Group("/purchase-orders")
		{
			purchases.GET("", s.listPurchaseOrders)
			purchases.GET("/:id", s.getPurchaseOrder)
			purchases.POST("", s.createPurchaseOrder)
			purchases.PUT("/:id/status", s.updatePurchaseOrderStatus)
		}

		analytics := v1.Group("/analytics")
		{
			analytics.GET("/kpis", s.getKPIs)
			analytics.GET("/top-sellers", s.getTopSellers)
			analytics.GET("/category-sales", s.getCategorySales)
			analytics.GET("/revenue", s.getRevenue)
		}

		v1.GET("/activity", s.getActivity)
		v1.GET("/settings", s.getSettings)
	}
}

// Run starts serving on the configured address and blocks
func (s *Server) Run() error {
	s.logger.Info("HTTP server starting", zap.String("addr", s.config.HTTP.Addr))
	return s.router.Run(s.config.HTTP.Addr)
}

// sessionID identifies the caller's cart and login session. Every browser
// tab sends its own id; an absent header falls back to a shared session,
// which keeps curl usage simple.
func sessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	return "default"
}

// fail translates service errors to status codes. Missing entities are a
// normal outcome, not a server fault.
func fail(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, repositories.ErrNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
