package booking

import (
	"context"
	"time"

	"github.com/michemobile/marketplace-api/internal/audit"
	domain "github.com/michemobile/marketplace-api/internal/domain/booking"
	"github.com/michemobile/marketplace-api/internal/httperr"
	"github.com/michemobile/marketplace-api/internal/models"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	profileID string,
	bookingID string,
) (*models.Booking, error) {

	pro, err := uc.repo.GetProfessionalByProfileID(ctx, profileID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	b, err := uc.repo.GetBookingForProfessional(ctx, bookingID, pro.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Complete(b, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &profileID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
