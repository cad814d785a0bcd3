package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type inventoryItemRequest struct {
	Name         string  `json:"name" binding:"required"`
	CurrentStock float64 `json:"current_stock"`
	Unit         string  `json:"unit" binding:"required"`
	ReorderLevel float64 `json:"reorder_level"`
	Supplier     string  `json:"supplier"`
}

func (s *Server) listInventory(c *gin.Context) {
	items, err := s.services.Inventory.All()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) listLowStock(c *gin.Context) {
	items, err := s.services.Inventory.LowStock()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) getInventoryItem(c *gin.Context) {
	item, err := s.services.Inventory.ByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) createInventoryItem(c *gin.Context) {
	var req inventoryItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := s.services.Inventory.Create(req.Name, req.CurrentStock, req.Unit, req.ReorderLevel, req.Supplier)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// updateInventoryItem edits descriptive fields. Stock itself only moves
// through the adjust endpoint.
func (s *Server) updateInventoryItem(c *gin.Context) {
	item, err := s.services.Inventory.ByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var req inventoryItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.Name = req.Name
	item.Unit = req.Unit
	item.ReorderLevel = req.ReorderLevel
	item.Supplier = req.Supplier

	updated, err := s.services.Inventory.Update(item)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) adjustStock(c *gin.Context) {
	var req struct {
		Delta float64 `json:"delta" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := s.services.Inventory.AdjustStock(c.Param("id"), req.Delta)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) deleteInventoryItem(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": s.services.Inventory.Delete(c.Param("id"))})
}
