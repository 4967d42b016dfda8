package booking

import (
	"time"

	"github.com/michemobile/marketplace-api/internal/httperr"
)

// ===============================
// Booking Intent
// ===============================

// Intent carries the four selections of the booking form. Fields may be
// filled in any order; Resolve gates on completeness only at submit.
type Intent struct {
	ServiceID      string
	ProfessionalID string
	Date           string // 2006-01-02
	Time           string // 3:04 PM
	Location       string
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "3:04 PM"
)

// BookingWindowMonths bounds how far ahead a date may be picked.
const BookingWindowMonths = 3

func (in Intent) Complete() bool {
	return in.ServiceID != "" && in.ProfessionalID != "" && in.Date != "" && in.Time != ""
}

// Resolve validates the intent and returns the concrete appointment time.
// The selectable range is [today, today+3 calendar months]; out-of-range
// dates are rejected the same way the picker disables them.
func (in Intent) Resolve(now time.Time) (time.Time, error) {
	if !in.Complete() {
		return time.Time{}, httperr.ErrBusiness("missing_selection")
	}

	day, err := time.ParseInLocation(dateLayout, in.Date, now.Location())
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}

	clock, err := time.Parse(timeLayout, in.Time)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_time")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return time.Time{}, httperr.ErrBusiness("date_out_of_range")
	}
	if day.After(today.AddDate(0, BookingWindowMonths, 0)) {
		return time.Time{}, httperr.ErrBusiness("date_out_of_range")
	}

	return time.Date(
		day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		now.Location(),
	), nil
}
