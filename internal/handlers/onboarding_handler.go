package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/michemobile/marketplace-api/internal/config"
	"github.com/michemobile/marketplace-api/internal/httperr"
	ucOnboarding "github.com/michemobile/marketplace-api/internal/usecase/onboarding"
	"github.com/michemobile/marketplace-api/internal/username"
	"github.com/michemobile/marketplace-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type OnboardingHandler struct {
	submitUC *ucOnboarding.SubmitApplication
	names    *username.Checker
	config   *config.Config
}

func NewOnboardingHandler(
	submitUC *ucOnboarding.SubmitApplication,
	names *username.Checker,
	cfg *config.Config,
) *OnboardingHandler {
	return &OnboardingHandler{
		submitUC: submitUC,
		names:    names,
		config:   cfg,
	}
}

// ======================================================
// SUBMIT
// ======================================================

func (h *OnboardingHandler) Submit(c *gin.Context) {
	var app ucOnboarding.Application
	if err := c.ShouldBindJSON(&app); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed application payload.")
		return
	}

	// DNS-backed check stays at the edge; the gates are pure
	if app.Email != "" && !validators.IsEmailDomainValid(strings.ToLower(strings.TrimSpace(app.Email))) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), app)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	token, err := h.generateToken(result.User.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Account created; sign in manually.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"profile":      result.Profile,
		"professional": result.Professional,
		"services":     result.Services,
		"token":        token,
	})
}

// ======================================================
// STEP VALIDATION
// ======================================================

// ValidateStep runs one wizard gate without persisting anything, so the
// client can advance step by step against the same rules submit uses.
func (h *OnboardingHandler) ValidateStep(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		httperr.BadRequest(c, "invalid_step", "Step must be 1-4.")
		return
	}

	var app ucOnboarding.Application
	if err := c.ShouldBindJSON(&app); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed step payload.")
		return
	}

	if err := app.ValidateStep(step); err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "step": step})
}

// ======================================================
// USERNAME AVAILABILITY
// ======================================================

func (h *OnboardingHandler) UsernameAvailability(c *gin.Context) {
	name := c.Query("username")

	available, err := h.names.Available(c.Request.Context(), name)
	if err != nil {
		if _, ok := httperr.BusinessCode(err); ok {
			respondUsecaseError(c, err)
			return
		}
		httperr.Internal(c, "availability_check_failed", "Try again shortly.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username":  username.Normalize(name),
		"available": available,
	})
}

// ======================================================
// JWT
// ======================================================

func (h *OnboardingHandler) generateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"type": "professional",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
