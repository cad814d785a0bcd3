package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vsinha/cafeops/pkg/domain/entities"
)

type menuItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	PrepTimeMin int             `json:"prep_time_min"`
	Tags        []string        `json:"tags"`
}

func (s *Server) listMenu(c *gin.Context) {
	var (
		items interface{}
		err   error
	)
	if category := c.Query("category"); category != "" {
		items, err = s.services.Menu.ByCategory(entities.MenuCategory(category))
	} else {
		items, err = s.services.Menu.All()
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, entities.MenuCategories)
}

func (s *Server) getMenuItem(c *gin.Context) {
	item, err := s.services.Menu.ByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) createMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := s.services.Menu.Create(req.Name, req.Description, entities.MenuCategory(req.Category), req.Price, req.PrepTimeMin, req.Tags)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) updateMenuItem(c *gin.Context) {
	item, err := s.services.Menu.ByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var req menuItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Category = entities.MenuCategory(req.Category)
	item.Price = req.Price
	item.PrepTimeMin = req.PrepTimeMin
	item.Tags = req.Tags

	updated, err := s.services.Menu.Update(item)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) toggleMenuItem(c *gin.Context) {
	item, err := s.services.Menu.ToggleAvailability(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) deleteMenuItem(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": s.services.Menu.Delete(c.Param("id"))})
}
