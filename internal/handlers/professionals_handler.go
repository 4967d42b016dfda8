package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/michemobile/marketplace-api/internal/catalog"
	"github.com/michemobile/marketplace-api/internal/models"
)

type ProfessionalsHandler struct {
	db *gorm.DB
}

func NewProfessionalsHandler(db *gorm.DB) *ProfessionalsHandler {
	return &ProfessionalsHandler{db: db}
}

type professionalListing struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Username    *string          `json:"username"`
	ServiceArea string           `json:"service_area"`
	Bio         string           `json:"bio"`
	Services    []models.Service `json:"services"`
	Verified    bool             `json:"verified"`
}

// List returns the public directory: verified professionals only. While
// the marketplace is empty the seeded directory keeps the page alive.
func (h *ProfessionalsHandler) List(c *gin.Context) {
	var pros []models.Professional
	if err := h.db.
		Preload("Profile").
		Where("verified = ?", true).
		Find(&pros).Error; err != nil || len(pros) == 0 {

		seeded := catalog.VerifiedDirectory()
		c.JSON(http.StatusOK, gin.H{
			"data":   seeded,
			"total":  len(seeded),
			"seeded": true,
		})
		return
	}

	listings := make([]professionalListing, 0, len(pros))
	for _, pro := range pros {
		var services []models.Service
		h.db.Where("professional_id = ?", pro.ID).
			Order("name ASC").
			Find(&services)

		listings = append(listings, professionalListing{
			ID:          pro.ID,
			Name:        pro.Profile.FullName(),
			Username:    pro.Profile.Username,
			ServiceArea: pro.ServiceArea,
			Bio:         pro.Bio,
			Services:    services,
			Verified:    pro.Verified,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  listings,
		"total": len(listings),
	})
}
