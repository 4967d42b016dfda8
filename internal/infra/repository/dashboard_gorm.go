package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/michemobile/marketplace-api/internal/dashboard"
	"github.com/michemobile/marketplace-api/internal/models"
)

type DashboardGormRepository struct {
	db *gorm.DB
}

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

func (r *DashboardGormRepository) GetProfile(
	ctx context.Context,
	userID string,
) (*models.Profile, error) {

	var profile models.Profile
	if err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *DashboardGormRepository) GetProfessionalByProfileID(
	ctx context.Context,
	profileID string,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&pro).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

func (r *DashboardGormRepository) ListClientBookings(
	ctx context.Context,
	clientID string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Professional.Profile").
		Where("client_id = ?", clientID).
		Order("booking_date DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *DashboardGormRepository) ListProfessionalBookings(
	ctx context.Context,
	professionalID string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Client").
		Where("professional_id = ?", professionalID).
		Order("booking_date DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ dashboard.Repository = (*DashboardGormRepository)(nil)
