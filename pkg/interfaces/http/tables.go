package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vsinha/cafeops/pkg/domain/entities"
)

func (s *Server) listTables(c *gin.Context) {
	tables, err := s.services.Tables.All()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (s *Server) listAvailableTables(c *gin.Context) {
	tables, err := s.services.Tables.Available()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (s *Server) getTable(c *gin.Context) {
	table, err := s.services.Tables.ByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (s *Server) editTable(c *gin.Context) {
	var req struct {
		Number   int `json:"number" binding:"required"`
		Capacity int `json:"capacity" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := s.services.Tables.Edit(c.Param("id"), req.Number, req.Capacity)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// overrideTable lets staff set any occupancy state directly, for walk-ins
// and reservations that never show up.
func (s *Server) overrideTable(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := s.services.Tables.Override(c.Param("id"), entities.TableStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}
