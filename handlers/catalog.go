package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-assistant/models"
)

// ListDestinations serves the destination catalog, optionally filtered by
// category.
func ListDestinations(c *gin.Context) {
	destinations := models.DestinationsByCategory(c.Query("category"))
	if destinations == nil {
		destinations = []models.Destination{}
	}
	c.JSON(http.StatusOK, destinations)
}
