package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michemobile/marketplace-api/internal/config"
	"github.com/michemobile/marketplace-api/internal/dashboard"
	"github.com/michemobile/marketplace-api/internal/middleware"
)

// newDashboardRouter mirrors the dashboard wiring: the routes sit behind
// the demo-aware auth middleware, with the fixture backing both sources.
func newDashboardRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)

	fixture := dashboard.NewFixtureSource()
	h := NewDashboardHandler(dashboard.NewFallback(fixture, fixture), fixture)

	r := gin.New()
	dashboards := r.Group("/api/dashboard")
	dashboards.Use(middleware.DemoAwareAuthMiddleware(cfg))
	{
		dashboards.GET("/client", h.Client)
		dashboards.GET("/professional", h.Professional)
	}
	return r
}

func TestDashboardDemoWithoutToken(t *testing.T) {
	r := newDashboardRouter(&config.Config{JWTSecret: "test-secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/client?demo=true", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var summary dashboard.ClientSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.True(t, summary.Demo)
	assert.Equal(t, "Jessica Smith", summary.UserName)
	assert.InDelta(t, 845.75, summary.TotalSpent, 0.001)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/dashboard/professional?demo=true", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var pro dashboard.ProfessionalSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pro))
	assert.True(t, pro.Demo)
	assert.Equal(t, "Michelle Johnson", pro.ProfessionalName)
	assert.InDelta(t, 670.00, pro.TotalRevenue, 0.001)
}

func TestDashboardWithoutTokenRejected(t *testing.T) {
	r := newDashboardRouter(&config.Config{JWTSecret: "test-secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/client", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing_authorization_header")
}

func TestDashboardWithToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := newDashboardRouter(cfg)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/client", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
