package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) getKPIs(c *gin.Context) {
	kpis, err := s.services.Analytics.KPIs()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, kpis)
}

func (s *Server) getTopSellers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	rows, err := s.services.Analytics.TopSellingItems(limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) getCategorySales(c *gin.Context) {
	rows, err := s.services.Analytics.CategorySalesReport()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) getRevenue(c *gin.Context) {
	days, _ := strconv.Atoi(c.Query("days"))
	rows, err := s.services.Analytics.RevenueByDay(days)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// getActivity returns the most recent domain events, newest last
func (s *Server) getActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 {
		limit = 50
	}

	recent, err := s.events.ReadRecent(limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, recent)
}

// getSettings exposes the cafe configuration for the settings screen
func (s *Server) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":                   s.config.Cafe.Name,
		"address":                s.config.Cafe.Address,
		"phone":                  s.config.Cafe.Phone,
		"email":                  s.config.Cafe.Email,
		"currency":               s.config.Cafe.Currency,
		"tax_pct":                s.config.Cafe.TaxPct,
		"service_charge_enabled": s.config.Cafe.ServiceChargeOn,
		"service_charge_pct":     s.config.Cafe.ServiceChargePct,
		"hours":                  s.config.Cafe.Hours,
	})
}
