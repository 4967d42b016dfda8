package booking

import (
	"context"
	"time"

	"github.com/michemobile/marketplace-api/internal/audit"
	"github.com/michemobile/marketplace-api/internal/catalog"
	domain "github.com/michemobile/marketplace-api/internal/domain/booking"
	"github.com/michemobile/marketplace-api/internal/httperr"
	"github.com/michemobile/marketplace-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientID string

	ServiceID      string
	ProfessionalID string
	Date           string
	Time           string
	Location       string
	Notes          string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// 1. Intent: every field present, date inside the window
	intent := domain.Intent{
		ServiceID:      in.ServiceID,
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
		Time:           in.Time,
		Location:       in.Location,
	}

	start, err := intent.Resolve(uc.now())
	if err != nil {
		return nil, err
	}

	// 2. Time must be one of the offered slots
	if !catalog.IsBookableTime(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// 3. Professional
	pro, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	// 4. Service, priced from its own row
	svc, err := uc.repo.GetService(ctx, pro.ID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// 5. Persist as pending
	b := &models.Booking{
		ClientID:       in.ClientID,
		ProfessionalID: pro.ID,
		ServiceID:      svc.ID,
		BookingDate:    start,
		Status:         string(domain.InitialStatus()),
		Location:       in.Location,
		Notes:          in.Notes,
		TotalAmount:    svc.Price,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// 6. Audit
	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ClientID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
