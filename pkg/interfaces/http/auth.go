package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vsinha/cafeops/pkg/application/services"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, sid, err := s.services.Auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       user,
		"session_id": sid,
	})
}

func (s *Server) currentUser(c *gin.Context) {
	user, ok := s.services.Auth.Current(sessionID(c))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) logout(c *gin.Context) {
	s.services.Auth.Logout(sessionID(c))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
