package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/michemobile/marketplace-api/internal/catalog"
	"github.com/michemobile/marketplace-api/internal/httpresp"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Services lists the suggestion catalog, optionally filtered by the
// category query param.
func (h *CatalogHandler) Services(c *gin.Context) {
	category := c.DefaultQuery("category", "all")

	c.JSON(http.StatusOK, gin.H{
		"categories": catalog.Categories,
		"services":   catalog.ServicesByCategory(category),
	})
}

func (h *CatalogHandler) TimeSlots(c *gin.Context) {
	httpresp.List(c, catalog.BookingTimeSlots)
}
