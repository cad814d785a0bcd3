package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.services.Cart.Get(sessionID(c)))
}

func (s *Server) setCartTable(c *gin.Context) {
	// An empty table id switches the cart to takeaway.
	var req struct {
		TableID string `json:"table_id"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.services.Cart.SetTable(sessionID(c), req.TableID))
}

func (s *Server) addCartItem(c *gin.Context) {
	var req struct {
		MenuItemID string `json:"menu_item_id" binding:"required"`
		Quantity   int    `json:"quantity"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := s.services.Cart.AddItem(sessionID(c), req.MenuItemID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// updateCartItem applies whichever fields the request carries. A quantity of
// zero or less removes the line.
func (s *Server) updateCartItem(c *gin.Context) {
	var req struct {
		Quantity    *int     `json:"quantity"`
		Notes       *string  `json:"notes"`
		DiscountPct *float64 `json:"discount_pct"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sid := sessionID(c)
	lineID := c.Param("lineId")
	cart := s.services.Cart.Get(sid)
	var err error

	if req.Notes != nil {
		if cart, err = s.services.Cart.UpdateNotes(sid, lineID, *req.Notes); err != nil {
			fail(c, err)
			return
		}
	}
	if req.DiscountPct != nil {
		if cart, err = s.services.Cart.ApplyLineDiscount(sid, lineID, *req.DiscountPct); err != nil {
			fail(c, err)
			return
		}
	}
	if req.Quantity != nil {
		if cart, err = s.services.Cart.UpdateQuantity(sid, lineID, *req.Quantity); err != nil {
			fail(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, cart)
}

func (s *Server) removeCartItem(c *gin.Context) {
	cart, err := s.services.Cart.RemoveItem(sessionID(c), c.Param("lineId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (s *Server) applyCartDiscount(c *gin.Context) {
	var req struct {
		Pct float64 `json:"pct"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.services.Cart.ApplyGlobalDiscount(sessionID(c), req.Pct))
}

func (s *Server) clearCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.services.Cart.Clear(sessionID(c)))
}

func (s *Server) checkout(c *gin.Context) {
	order, err := s.services.Cart.Checkout(sessionID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}
