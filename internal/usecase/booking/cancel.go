package booking

import (
	"context"
	"time"

	"github.com/michemobile/marketplace-api/internal/audit"
	domain "github.com/michemobile/marketplace-api/internal/domain/booking"
	"github.com/michemobile/marketplace-api/internal/httperr"
	"github.com/michemobile/marketplace-api/internal/models"
)

// CancelBooking may be executed by either side of the booking; the row
// is looked up scoped to the acting profile.
type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	profileID string,
	bookingID string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForParticipant(ctx, bookingID, profileID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Cancel(b, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &profileID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
