package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/michemobile/marketplace-api/internal/calendar"
	"github.com/michemobile/marketplace-api/internal/httperr"
	"github.com/michemobile/marketplace-api/internal/middleware"
	"github.com/michemobile/marketplace-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type CalendarHandler struct {
	db *gorm.DB
}

func NewCalendarHandler(db *gorm.DB) *CalendarHandler {
	return &CalendarHandler{db: db}
}

// Bookings occupy one hourly slot on the grid.
const bookingDurationMin = 60

func parseCalendarDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), true
	}

	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return time.Time{}, false
	}
	return date, true
}

// loadAppointments projects the professional's bookings in [from, to)
// onto the calendar shape.
func (h *CalendarHandler) loadAppointments(
	c *gin.Context,
	from time.Time,
	to time.Time,
) ([]calendar.Appointment, bool) {

	profileID := c.MustGet(middleware.ContextUserID).(string)

	var pro models.Professional
	if err := h.db.Where("profile_id = ?", profileID).First(&pro).Error; err != nil {
		httperr.Forbidden(c, "professional_only", "The calendar belongs to professional accounts.")
		return nil, false
	}

	var bookings []models.Booking
	if err := h.db.
		Preload("Client").
		Preload("Service").
		Where(
			"professional_id = ? AND booking_date >= ? AND booking_date < ?",
			pro.ID, from, to,
		).
		Order("booking_date ASC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "calendar_unavailable", "Could not load appointments.")
		return nil, false
	}

	appointments := make([]calendar.Appointment, 0, len(bookings))
	for _, b := range bookings {
		appointments = append(appointments, calendar.Appointment{
			ID:          b.ID,
			Date:        b.BookingDate,
			DurationMin: bookingDurationMin,
			ClientName:  b.Client.FullName(),
			ServiceName: b.Service.Name,
			Location:    b.Location,
			Status:      b.Status,
			Color:       calendar.StatusColor(b.Status),
		})
	}
	return appointments, true
}

// ======================================================
// DAY / WEEK
// ======================================================

func (h *CalendarHandler) Day(c *gin.Context) {
	date, ok := parseCalendarDate(c)
	if !ok {
		return
	}

	appointments, ok := h.loadAppointments(c, date, date.AddDate(0, 0, 1))
	if !ok {
		return
	}

	c.JSON(http.StatusOK, calendar.Day(date, appointments))
}

func (h *CalendarHandler) Week(c *gin.Context) {
	date, ok := parseCalendarDate(c)
	if !ok {
		return
	}

	start := calendar.WeekStart(date)
	appointments, ok := h.loadAppointments(c, start, start.AddDate(0, 0, 7))
	if !ok {
		return
	}

	c.JSON(http.StatusOK, calendar.Week(date, appointments))
}
