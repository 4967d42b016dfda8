package booking

import (
	"context"

	domain "github.com/michemobile/marketplace-api/internal/domain/booking"
	"github.com/michemobile/marketplace-api/internal/httperr"
	"github.com/michemobile/marketplace-api/internal/models"
)

// ListBookings returns the caller's bookings: the client view when the
// profile is a client, the professional view otherwise.
type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	profileID string,
	profileType string,
) ([]models.Booking, error) {

	if profileType == models.ProfileTypeProfessional {
		pro, err := uc.repo.GetProfessionalByProfileID(ctx, profileID)
		if err != nil {
			return nil, httperr.ErrBusiness("professional_not_found")
		}
		return uc.repo.ListBookingsForProfessional(ctx, pro.ID)
	}

	return uc.repo.ListBookingsForClient(ctx, profileID)
}
