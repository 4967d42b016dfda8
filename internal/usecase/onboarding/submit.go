package onboarding

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/michemobile/marketplace-api/internal/audit"
	"github.com/michemobile/marketplace-api/internal/httperr"
	"github.com/michemobile/marketplace-api/internal/models"
	"github.com/michemobile/marketplace-api/internal/username"
)

// ======================================================
// REPOSITORY
// ======================================================

type Repository interface {
	CreateUser(ctx context.Context, user *models.User) error
	CreateProfileWithProfessional(
		ctx context.Context,
		profile *models.Profile,
		pro *models.Professional,
	) error
	CreateService(ctx context.Context, svc *models.Service) error
	CreateCertification(ctx context.Context, cert *models.Certification) error
	DeleteOnboardingArtifacts(
		ctx context.Context,
		profileID string,
		professionalID string,
	) error
}

// ======================================================
// RESULT
// ======================================================

type SubmitResult struct {
	User         *models.User
	Profile      *models.Profile
	Professional *models.Professional
	Services     []models.Service
}

// ======================================================
// USE CASE
// ======================================================

type SubmitApplication struct {
	repo     Repository
	names    *username.Checker
	audit    *audit.Dispatcher
	hashCost int
}

func NewSubmitApplication(
	repo Repository,
	names *username.Checker,
	audit *audit.Dispatcher,
) *SubmitApplication {
	return &SubmitApplication{
		repo:     repo,
		names:    names,
		audit:    audit,
		hashCost: bcrypt.DefaultCost,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitApplication) Execute(
	ctx context.Context,
	app Application,
) (*SubmitResult, error) {

	// 1. Every gate re-validated at submit
	if err := app.ValidateAll(); err != nil {
		return nil, err
	}

	// 2. Username: reserved names and existing claims
	name := username.Normalize(app.Username)
	available, err := uc.names.Available(ctx, name)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, httperr.ErrBusiness("username_taken")
	}

	// 3. Auth account first; profile rows hang off the user id
	hashed, err := bcrypt.GenerateFromPassword([]byte(app.Password), uc.hashCost)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(app.Email))
	user := &models.User{
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, httperr.ErrBusiness("email_taken")
		}
		return nil, err
	}

	// 4. Profile + professional in one transaction
	radius := app.ServiceRadius
	if radius == 0 {
		radius = 10
	}

	profile := &models.Profile{
		ID:        user.ID,
		FirstName: strings.TrimSpace(app.FirstName),
		LastName:  strings.TrimSpace(app.LastName),
		Email:     email,
		Phone:     strings.TrimSpace(app.Phone),
		Username:  &name,
		Type:      models.ProfileTypeProfessional,
	}
	pro := &models.Professional{
		ProfileID:       profile.ID,
		ServiceArea:     strings.TrimSpace(app.ServiceArea),
		ServiceRadius:   radius,
		TravelFee:       app.TravelFee,
		YearsExperience: app.YearsExperience,
		Bio:             app.Bio,
	}

	if err := uc.repo.CreateProfileWithProfessional(ctx, profile, pro); err != nil {
		if isUniqueViolation(err) {
			return nil, httperr.ErrBusiness("username_taken")
		}
		return nil, err
	}

	// 5. Service rows fan out together; all must land
	services := make([]models.Service, len(app.Services))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i, in := range app.Services {
		i, in := i, in
		g.Go(func() error {
			svc := &models.Service{
				ProfessionalID: pro.ID,
				Name:           strings.TrimSpace(in.Name),
				Price:          in.Price,
				Description:    strings.TrimSpace(in.Description),
				IsCustom:       in.IsCustom,
			}
			if err := uc.repo.CreateService(gctx, svc); err != nil {
				return err
			}
			mu.Lock()
			services[i] = *svc
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.compensate(ctx, profile.ID, pro.ID)
		return nil, httperr.ErrBusiness("services_creation_failed")
	}

	// 6. Certification rows from the step-3 object keys
	for _, in := range app.Certifications {
		cert := &models.Certification{
			ProfessionalID: pro.ID,
			Kind:           in.Kind,
			ObjectKey:      in.ObjectKey,
			ContentType:    in.ContentType,
			FileName:       in.FileName,
		}
		if err := uc.repo.CreateCertification(ctx, cert); err != nil {
			uc.compensate(ctx, profile.ID, pro.ID)
			return nil, httperr.ErrBusiness("application_failed")
		}
	}

	// 7. Audit
	uc.audit.Dispatch(audit.Event{
		ActorID:  &user.ID,
		Action:   "professional_application_submitted",
		Entity:   "professional",
		EntityID: &pro.ID,
		Metadata: map[string]any{
			"username":         name,
			"service_count":    len(services),
			"marketing_opt_in": app.MarketingOptIn,
		},
	})

	return &SubmitResult{
		User:         user,
		Profile:      profile,
		Professional: pro,
		Services:     services,
	}, nil
}

func (uc *SubmitApplication) compensate(
	ctx context.Context,
	profileID string,
	professionalID string,
) {
	// best effort; a failed cleanup leaves rows for the next attempt to
	// surface as duplicates
	_ = uc.repo.DeleteOnboardingArtifacts(ctx, profileID, professionalID)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
