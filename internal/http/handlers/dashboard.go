package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboard proxies the backend's precomputed aggregates.
func GetDashboard(c *gin.Context) {
	stats, err := client.DashboardStats(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
