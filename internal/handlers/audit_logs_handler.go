package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/michemobile/marketplace-api/internal/httperr"
	"github.com/michemobile/marketplace-api/internal/httpresp"
	"github.com/michemobile/marketplace-api/internal/middleware"
	"github.com/michemobile/marketplace-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the caller's own recent activity trail.
func (h *AuditLogsHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var logs []models.AuditLog
	if err := h.db.
		Where("actor_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "audit_logs_unavailable", "Could not load activity.")
		return
	}

	httpresp.List(c, logs)
}
