package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/michemobile/marketplace-api/internal/dashboard"
	"github.com/michemobile/marketplace-api/internal/httperr"
	"github.com/michemobile/marketplace-api/internal/middleware"
)

type DashboardHandler struct {
	source  dashboard.DataSource
	fixture dashboard.DataSource
}

// source is the fallback-wrapped live source; fixture serves demo=true
// directly.
func NewDashboardHandler(source, fixture dashboard.DataSource) *DashboardHandler {
	return &DashboardHandler{source: source, fixture: fixture}
}

func (h *DashboardHandler) pick(c *gin.Context) dashboard.DataSource {
	if c.Query("demo") == "true" {
		return h.fixture
	}
	return h.source
}

func (h *DashboardHandler) Client(c *gin.Context) {
	// demo requests skip auth and carry no identity; the fixture
	// ignores the id
	userID := c.GetString(middleware.ContextUserID)

	summary, err := h.pick(c).ClientDashboard(c.Request.Context(), userID)
	if err != nil {
		// the fallback source already degraded to fixture data; reaching
		// here means even that failed
		httperr.Internal(c, "dashboard_unavailable", "Dashboard temporarily unavailable.")
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *DashboardHandler) Professional(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	summary, err := h.pick(c).ProfessionalDashboard(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "dashboard_unavailable", "Dashboard temporarily unavailable.")
		return
	}

	c.JSON(http.StatusOK, summary)
}
