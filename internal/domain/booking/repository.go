package booking

import (
	"context"

	"github.com/michemobile/marketplace-api/internal/models"
)

type Repository interface {
	// -------- Professional --------
	GetProfessionalByID(
		ctx context.Context,
		id string,
	) (*models.Professional, error)

	GetProfessionalByProfileID(
		ctx context.Context,
		profileID string,
	) (*models.Professional, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		professionalID string,
		serviceID string,
	) (*models.Service, error)

	// -------- Booking (create) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingForProfessional(
		ctx context.Context,
		bookingID string,
		professionalID string,
	) (*models.Booking, error)

	GetBookingForParticipant(
		ctx context.Context,
		bookingID string,
		profileID string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (listing) --------
	ListBookingsForClient(
		ctx context.Context,
		clientID string,
	) ([]models.Booking, error)

	ListBookingsForProfessional(
		ctx context.Context,
		professionalID string,
	) ([]models.Booking, error)
}
