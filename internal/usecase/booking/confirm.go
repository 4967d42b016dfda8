package booking

import (
	"context"

	"github.com/michemobile/marketplace-api/internal/audit"
	domain "github.com/michemobile/marketplace-api/internal/domain/booking"
	"github.com/michemobile/marketplace-api/internal/httperr"
	"github.com/michemobile/marketplace-api/internal/models"
)

type ConfirmBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ConfirmBooking) Execute(
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

	if err := domain.Confirm(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &profileID,
		Action:   "booking_confirmed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
