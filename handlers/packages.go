package handlers

import (
	"net/http"

	"altitude/services/catalog"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "online",
		"service":  "Altitude Huntsville Party Booking Assistant",
		"packages": catalog.Names(),
	})
}

// GetPackagesHandler handles GET /packages with the full catalog.
func GetPackagesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packages": catalog.All()})
}
