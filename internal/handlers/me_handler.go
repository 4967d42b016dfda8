package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/michemobile/marketplace-api/internal/middleware"
	"github.com/michemobile/marketplace-api/internal/models"
	"github.com/michemobile/marketplace-api/internal/username"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// profileColumns is the narrowed selection retried after a store error;
// some stores reject the wildcard fetch but serve explicit columns.
var profileColumns = []string{
	"id", "first_name", "last_name", "email", "phone", "username", "type",
}

func dashboardPath(profileType string) string {
	if profileType == models.ProfileTypeProfessional {
		return "/dashboard/professional"
	}
	return "/dashboard/client"
}

func needsSetup(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"needs_setup": true,
		"options":     []string{models.ProfileTypeClient, models.ProfileTypeProfessional},
	})
}

// GetMe resolves the session into a profile plus its dashboard route. A
// missing profile is a recoverable setup prompt, never an error.
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var profile models.Profile
	err := h.db.Where("id = ?", userID).First(&profile).Error

	if err == gorm.ErrRecordNotFound {
		needsSetup(c)
		return
	}

	if err != nil {
		// one retry with an explicit column list
		log.Printf("profile fetch failed for %s, retrying narrowed: %v", userID, err)
		err = h.db.Select(profileColumns).
			Where("id = ?", userID).
			First(&profile).Error
	}

	if err != nil {
		// degrade to the setup prompt rather than failing the session
		needsSetup(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":   profile,
		"dashboard": dashboardPath(profile.Type),
	})
}

type CreateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
	Username  string `json:"username"`
	Type      string `json:"type" binding:"required,oneof=client professional"`
}

// CreateProfile finishes account setup for a user without a profile.
// The type is fixed here; there is no type-change path.
func (h *MeHandler) CreateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var existing int64
	h.db.Model(&models.Profile{}).Where("id = ?", userID).Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "profile_exists"})
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	profile := models.Profile{
		ID:        userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     user.Email,
		Phone:     req.Phone,
		Type:      req.Type,
	}
	if name := username.Normalize(req.Username); name != "" {
		profile.Username = &name
	}

	if err := h.db.Create(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_profile"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"profile":   profile,
		"dashboard": dashboardPath(profile.Type),
	})
}
