package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/michemobile/marketplace-api/internal/catalog"
	"github.com/michemobile/marketplace-api/internal/httperr"
	"github.com/michemobile/marketplace-api/internal/middleware"
	"github.com/michemobile/marketplace-api/internal/models"
	ucBooking "github.com/michemobile/marketplace-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db *gorm.DB

	createUC   *ucBooking.CreateBooking
	confirmUC  *ucBooking.ConfirmBooking
	completeUC *ucBooking.CompleteBooking
	cancelUC   *ucBooking.CancelBooking
	listUC     *ucBooking.ListBookings
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateBooking,
	confirmUC *ucBooking.ConfirmBooking,
	completeUC *ucBooking.CompleteBooking,
	cancelUC *ucBooking.CancelBooking,
	listUC *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		db:         db,
		createUC:   createUC,
		confirmUC:  confirmUC,
		completeUC: completeUC,
		cancelUC:   cancelUC,
		listUC:     listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID      string `json:"service_id" binding:"required"`
	ProfessionalID string `json:"professional_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Location       string `json:"location" binding:"required"`
	Notes          string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_selection", "Service, professional, date, time and location are required.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClientID:       clientID,
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Time:           req.Time,
		Location:       req.Location,
		Notes:          req.Notes,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// OPTIONS (booking form data)
// ======================================================

// Options returns everything the booking form selects from. The pro and
// name query params pre-select a professional by id or username.
func (h *BookingHandler) Options(c *gin.Context) {
	var selected *models.Professional

	if proID := c.Query("pro"); proID != "" {
		var pro models.Professional
		if err := h.db.Preload("Profile").
			Where("id = ?", proID).
			First(&pro).Error; err == nil {
			selected = &pro
		}
	} else if name := c.Query("name"); name != "" {
		var pro models.Professional
		if err := h.db.Preload("Profile").
			Joins("JOIN profiles ON profiles.id = professionals.profile_id").
			Where("LOWER(profiles.username) = LOWER(?)", name).
			First(&pro).Error; err == nil {
			selected = &pro
		}
	}

	resp := gin.H{
		"time_slots": catalog.BookingTimeSlots,
	}

	if selected != nil {
		var services []models.Service
		h.db.Where("professional_id = ?", selected.ID).
			Order("name ASC").
			Find(&services)

		resp["selected"] = gin.H{
			"professional_id":   selected.ID,
			"professional_name": selected.Profile.FullName(),
		}
		resp["services"] = services
	} else {
		resp["services"] = catalog.Services
	}

	var pros []models.Professional
	h.db.Preload("Profile").
		Where("verified = ?", true).
		Find(&pros)
	resp["professionals"] = pros

	c.JSON(http.StatusOK, resp)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextUserID).(string)
	profileType := c.GetString(middleware.ContextProfileType)

	bookings, err := h.listUC.Execute(c.Request.Context(), profileID, profileType)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  bookings,
		"total": len(bookings),
	})
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextUserID).(string)

	b, err := h.confirmUC.Execute(c.Request.Context(), profileID, c.Param("id"))
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextUserID).(string)

	b, err := h.completeUC.Execute(c.Request.Context(), profileID, c.Param("id"))
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextUserID).(string)

	b, err := h.cancelUC.Execute(c.Request.Context(), profileID, c.Param("id"))
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
