package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vsinha/cafeops/pkg/domain/entities"
)

type staffRequest struct {
	Name     string    `json:"name" binding:"required"`
	Role     string    `json:"role" binding:"required"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Shift    string    `json:"shift" binding:"required"`
	HireDate time.Time `json:"hire_date"`
}

func (s *Server) listStaff(c *gin.Context) {
	var (
		members interface{}
		err     error
	)
	if c.Query("active") == "true" {
		members, err = s.services.Staff.Active()
	} else {
		members, err = s.services.Staff.All()
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (s *Server) getStaff(c *gin.Context) {
	member, err := s.services.Staff.ByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (s *Server) createStaff(c *gin.Context) {
	var req staffRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.HireDate.IsZero() {
		req.HireDate = time.Now()
	}

	member, err := s.services.Staff.Create(req.Name, entities.Role(req.Role), req.Email, req.Phone, entities.Shift(req.Shift), req.HireDate)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (s *Server) updateStaff(c *gin.Context) {
	member, err := s.services.Staff.ByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var req staffRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member.Name = req.Name
	member.Role = entities.Role(req.Role)
	member.Email = req.Email
	member.Phone = req.Phone
	member.Shift = entities.Shift(req.Shift)
	if !req.HireDate.IsZero() {
		member.HireDate = req.HireDate
	}

	updated, err := s.services.Staff.Update(member)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) toggleStaff(c *gin.Context) {
	member, err := s.services.Staff.ToggleActive(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (s *Server) deleteStaff(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": s.services.Staff.Delete(c.Param("id"))})
}

func (s *Server) listPurchaseOrders(c *gin.Context) {
	orders, err := s.services.Purchases.All()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) getPurchaseOrder(c *gin.Context) {
	order, err := s.services.Purchases.ByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) createPurchaseOrder(c *gin.Context) {
	var req struct {
		Supplier string                       `json:"supplier" binding:"required"`
		Items    []entities.PurchaseOrderLine `json:"items" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.services.Purchases.Create(req.Supplier, req.Items)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (s *Server) updatePurchaseOrderStatus(c *gin.Context) {
	var req struct {
		Status       string     `json:"status" binding:"required"`
		DeliveryDate *time.Time `json:"delivery_date"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.services.Purchases.UpdateStatus(c.Param("id"), entities.PurchaseOrderStatus(req.Status), req.DeliveryDate)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
