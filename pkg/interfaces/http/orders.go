package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vsinha/cafeops/pkg/application/services"
	"github.com/vsinha/cafeops/pkg/domain/entities"
)

type orderLineRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	Notes      string `json:"notes"`
}

type createOrderRequest struct {
	TableID     string             `json:"table_id"`
	Items       []orderLineRequest `json:"items" binding:"required"`
	DiscountPct float64            `json:"discount_pct"`
}

func (s *Server) listOrders(c *gin.Context) {
	var (
		orders interface{}
		err    error
	)
	switch {
	case c.Query("active") == "true":
		orders, err = s.services.Orders.Active()
	case c.Query("status") != "":
		orders, err = s.services.Orders.ByStatus(entities.OrderStatus(c.Query("status")))
	default:
		orders, err = s.services.Orders.All()
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) getOrder(c *gin.Context) {
	order, err := s.services.Orders.ByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// createOrder places an order directly, bypassing the cart. Prices are read
// from the live menu at placement and frozen into the order.
func (s *Server) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines := make([]entities.LineItem, 0, len(req.Items))
	for _, reqLine := range req.Items {
		item, err := s.services.Menu.ByID(reqLine.MenuItemID)
		if err != nil {
			fail(c, err)
			return
		}
		line, err := entities.NewLineItem(*item, reqLine.Quantity)
		if err != nil {
			fail(c, err)
			return
		}
		line.Notes = reqLine.Notes
		lines = append(lines, *line)
	}

	totals := services.CalculateTotals(lines, req.DiscountPct, s.config.Cafe.TaxPct)
	order, err := s.services.Orders.Create(req.TableID, lines, totals, entities.StatusQueued)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.services.Orders.UpdateStatus(c.Param("id"), entities.OrderStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) advanceOrder(c *gin.Context) {
	order, err := s.services.Orders.AdvanceKitchen(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) payOrder(c *gin.Context) {
	var req struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.services.Orders.Pay(c.Param("id"), entities.PaymentMethod(req.Method))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) deleteOrder(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": s.services.Orders.Delete(c.Param("id"))})
}
