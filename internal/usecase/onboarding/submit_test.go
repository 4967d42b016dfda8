package onboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/michemobile/marketplace-api/internal/audit"
	"github.com/michemobile/marketplace-api/internal/httperr"
	"github.com/michemobile/marketplace-api/internal/models"
	"github.com/michemobile/marketplace-api/internal/username"
)

// ----------------------------------------------------
// Mock repository
// ----------------------------------------------------

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) UsernameTaken(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	if user.ID == "" {
		user.ID = "user-1" // simulate the insert hook
	}
	return args.Error(0)
}

func (m *MockRepository) CreateProfileWithProfessional(
	ctx context.Context,
	profile *models.Profile,
	pro *models.Professional,
) error {
	args := m.Called(ctx, profile, pro)
	if pro.ID == "" {
		pro.ID = "pro-1"
	}
	return args.Error(0)
}

func (m *MockRepository) CreateService(ctx context.Context, svc *models.Service) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *MockRepository) CreateCertification(ctx context.Context, cert *models.Certification) error {
	args := m.Called(ctx, cert)
	return args.Error(0)
}

func (m *MockRepository) DeleteOnboardingArtifacts(
	ctx context.Context,
	profileID string,
	professionalID string,
) error {
	args := m.Called(ctx, profileID, professionalID)
	return args.Error(0)
}

var _ Repository = (*MockRepository)(nil)

func newSubmitUC(repo *MockRepository) *SubmitApplication {
	uc := NewSubmitApplication(
		repo,
		username.NewChecker(repo, nil),
		audit.NewDispatcher(audit.New(nil)),
	)
	uc.hashCost = bcrypt.MinCost
	return uc
}

// ----------------------------------------------------
// Submit
// ----------------------------------------------------

func TestSubmitApplication(t *testing.T) {
	repo := new(MockRepository)
	repo.On("UsernameTaken", mock.Anything, "michelle_mua").Return(false, nil)
	repo.On("CreateUser", mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateProfileWithProfessional", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateService", mock.Anything, mock.Anything).Return(nil)

	uc := newSubmitUC(repo)

	result, err := uc.Execute(context.Background(), validApplication())
	require.NoError(t, err)

	assert.Equal(t, "user-1", result.User.ID)
	assert.Equal(t, "user-1", result.Profile.ID)
	assert.Equal(t, models.ProfileTypeProfessional, result.Profile.Type)
	require.NotNil(t, result.Profile.Username)
	assert.Equal(t, "michelle_mua", *result.Profile.Username)
	assert.False(t, result.Professional.Verified)

	require.Len(t, result.Services, 2)
	for _, svc := range result.Services {
		assert.Equal(t, "pro-1", svc.ProfessionalID)
	}

	// password is stored hashed
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(result.User.PasswordHash), []byte("supersecret1"),
	))

	repo.AssertExpectations(t)
}

func TestSubmitDefaultsServiceRadius(t *testing.T) {
	repo := new(MockRepository)
	repo.On("UsernameTaken", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("CreateUser", mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateProfileWithProfessional", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateService", mock.Anything, mock.Anything).Return(nil)

	app := validApplication()
	app.ServiceRadius = 0

	result, err := newSubmitUC(repo).Execute(context.Background(), app)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Professional.ServiceRadius)
}

func TestSubmitRevalidatesEveryGate(t *testing.T) {
	repo := new(MockRepository)
	uc := newSubmitUC(repo)

	app := validApplication()
	app.TermsAccepted = false

	_, err := uc.Execute(context.Background(), app)
	assert.True(t, httperr.IsBusiness(err, "terms_not_accepted"))
	repo.AssertNotCalled(t, "CreateUser")
}

func TestSubmitReservedUsername(t *testing.T) {
	repo := new(MockRepository)
	uc := newSubmitUC(repo)

	app := validApplication()
	app.Username = "maslynn"

	_, err := uc.Execute(context.Background(), app)
	assert.True(t, httperr.IsBusiness(err, "username_taken"))
	repo.AssertNotCalled(t, "CreateUser")
}

func TestSubmitDuplicateEmail(t *testing.T) {
	repo := new(MockRepository)
	repo.On("UsernameTaken", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("CreateUser", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})

	uc := newSubmitUC(repo)

	_, err := uc.Execute(context.Background(), validApplication())
	assert.True(t, httperr.IsBusiness(err, "email_taken"))
}

func TestSubmitServiceFailureCompensates(t *testing.T) {
	repo := new(MockRepository)
	repo.On("UsernameTaken", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("CreateUser", mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateProfileWithProfessional", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateService", mock.Anything, mock.Anything).Return(errors.New("insert failed"))
	repo.On("DeleteOnboardingArtifacts", mock.Anything, "user-1", "pro-1").Return(nil)

	uc := newSubmitUC(repo)

	_, err := uc.Execute(context.Background(), validApplication())
	assert.True(t, httperr.IsBusiness(err, "services_creation_failed"))
	repo.AssertCalled(t, "DeleteOnboardingArtifacts", mock.Anything, "user-1", "pro-1")
}

func TestSubmitLinksCertifications(t *testing.T) {
	repo := new(MockRepository)
	repo.On("UsernameTaken", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("CreateUser", mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateProfileWithProfessional", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateService", mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateCertification", mock.Anything, mock.MatchedBy(func(c *models.Certification) bool {
		return c.ProfessionalID == "pro-1" && c.Kind == "insurance"
	})).Return(nil)

	app := validApplication()
	app.Certifications = []CertificationInput{
		{Kind: "insurance", ObjectKey: "certifications/insurance/x.pdf", ContentType: "application/pdf"},
	}

	_, err := newSubmitUC(repo).Execute(context.Background(), app)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
