package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/michemobile/marketplace-api/internal/models"
	ucOnboarding "github.com/michemobile/marketplace-api/internal/usecase/onboarding"
	"github.com/michemobile/marketplace-api/internal/username"
)

type OnboardingGormRepository struct {
	db *gorm.DB
}

func NewOnboardingGormRepository(db *gorm.DB) *OnboardingGormRepository {
	return &OnboardingGormRepository{db: db}
}

// --------------------------------------------------
// Username
// --------------------------------------------------

func (r *OnboardingGormRepository) UsernameTaken(
	ctx context.Context,
	name string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("LOWER(username) = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Account
// --------------------------------------------------

func (r *OnboardingGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Profile and professional land together or not at all.
func (r *OnboardingGormRepository) CreateProfileWithProfessional(
	ctx context.Context,
	profile *models.Profile,
	pro *models.Professional,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		pro.ProfileID = profile.ID
		return tx.Create(pro).Error
	})
}

// --------------------------------------------------
// Services / certifications
// --------------------------------------------------

func (r *OnboardingGormRepository) CreateService(
	ctx context.Context,
	svc *models.Service,
) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *OnboardingGormRepository) CreateCertification(
	ctx context.Context,
	cert *models.Certification,
) error {
	return r.db.WithContext(ctx).Create(cert).Error
}

// --------------------------------------------------
// Compensation
// --------------------------------------------------

func (r *OnboardingGormRepository) DeleteOnboardingArtifacts(
	ctx context.Context,
	profileID string,
	professionalID string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("professional_id = ?", professionalID).
			Delete(&models.Service{}).Error; err != nil {
			return err
		}
		if err := tx.
			Where("professional_id = ?", professionalID).
			Delete(&models.Certification{}).Error; err != nil {
			return err
		}
		if err := tx.
			Where("id = ?", professionalID).
			Delete(&models.Professional{}).Error; err != nil {
			return err
		}
		if err := tx.
			Where("id = ?", profileID).
			Delete(&models.Profile{}).Error; err != nil {
			return err
		}
		// the profile id doubles as the user id; dropping the auth row
		// frees the email for a retried application
		return tx.
			Where("id = ?", profileID).
			Delete(&models.User{}).Error
	})
}

// Compile-time checks
var (
	_ ucOnboarding.Repository = (*OnboardingGormRepository)(nil)
	_ username.Repository     = (*OnboardingGormRepository)(nil)
)
