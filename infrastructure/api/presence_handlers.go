package api

import (
	"chat-relay/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) presenceStats(c *gin.Context) {
	stats := s.notifications.OnlineStats()
	c.JSON(http.StatusOK, gin.H{
		"count":      stats.Count,
		"users":      stats.Users,
		"monitoring": s.monitoring.GetLatest(),
	})
}

func (s *Server) presence(c *gin.Context) {
	userID := domain.UserID(c.Param("userId"))
	c.JSON(http.StatusOK, gin.H{"userId": userID, "online": s.notifications.IsOnline(userID)})
}
