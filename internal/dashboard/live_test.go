package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/michemobile/marketplace-api/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockRepository) GetProfessionalByProfileID(ctx context.Context, profileID string) (*models.Professional, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Professional), args.Error(1)
}

func (m *MockRepository) ListClientBookings(ctx context.Context, clientID string) ([]models.Booking, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) ListProfessionalBookings(ctx context.Context, professionalID string) ([]models.Booking, error) {
	args := m.Called(ctx, professionalID)
	return args.Get(0).([]models.Booking), args.Error(1)
}

var _ Repository = (*MockRepository)(nil)

func TestLiveClientDashboard(t *testing.T) {
	when := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	repo := new(MockRepository)
	repo.On("GetProfile", mock.Anything, "u1").
		Return(&models.Profile{ID: "u1", FirstName: "Jessica", LastName: "Smith"}, nil)
	repo.On("ListClientBookings", mock.Anything, "u1").
		Return([]models.Booking{
			{
				ID:          "bk-1",
				BookingDate: when,
				Status:      "completed",
				TotalAmount: 125,
				Service:     models.Service{Name: "Makeup"},
				Professional: models.Professional{
					Profile: models.Profile{FirstName: "Michelle", LastName: "Johnson"},
				},
			},
			{ID: "bk-2", Status: "pending", TotalAmount: 80},
		}, nil)

	s := NewLiveSource(repo, nil)

	summary, err := s.ClientDashboard(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "Jessica Smith", summary.UserName)
	assert.InDelta(t, 205.0, summary.TotalSpent, 0.001)
	assert.False(t, summary.Demo)

	require.Len(t, summary.Bookings, 2)
	assert.Equal(t, "Makeup", summary.Bookings[0].ServiceName)
	assert.Equal(t, "Michelle Johnson", summary.Bookings[0].ProfessionalName)
}

func TestLiveProfessionalDashboard(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetProfile", mock.Anything, "u2").
		Return(&models.Profile{ID: "u2", FirstName: "Michelle", LastName: "Johnson"}, nil)
	repo.On("GetProfessionalByProfileID", mock.Anything, "u2").
		Return(&models.Professional{ID: "pro-1"}, nil)
	repo.On("ListProfessionalBookings", mock.Anything, "pro-1").
		Return([]models.Booking{
			{
				ID:          "bk-1",
				ClientID:    "c1",
				Status:      "completed",
				TotalAmount: 150,
				Client:      models.Profile{FirstName: "Jessica", LastName: "Smith"},
				Service:     models.Service{Name: "Bridal Makeup"},
			},
			{ID: "bk-2", ClientID: "c1", Status: "cancelled", TotalAmount: 90},
		}, nil)

	s := NewLiveSource(repo, nil)

	summary, err := s.ProfessionalDashboard(context.Background(), "u2")
	require.NoError(t, err)

	assert.Equal(t, "Michelle Johnson", summary.ProfessionalName)
	assert.InDelta(t, 150.0, summary.TotalRevenue, 0.001)
	assert.Equal(t, 1, summary.TotalClients)
	assert.Equal(t, "Jessica Smith", summary.Bookings[0].ClientName)
}
