package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBookings() []BookingView {
	return []BookingView{
		{ID: "1", ClientID: "c1", Status: "completed", TotalAmount: 100},
		{ID: "2", ClientID: "c2", Status: "pending", TotalAmount: 50},
		{ID: "3", ClientID: "c1", Status: "completed", TotalAmount: 25.50},
		{ID: "4", ClientID: "c3", Status: "cancelled", TotalAmount: 80},
	}
}

func TestTotalSpentCountsEveryStatus(t *testing.T) {
	assert.InDelta(t, 255.50, TotalSpent(sampleBookings()), 0.001)
}

func TestTotalRevenueCountsCompletedOnly(t *testing.T) {
	assert.InDelta(t, 125.50, TotalRevenue(sampleBookings()), 0.001)
}

func TestDistinctClients(t *testing.T) {
	assert.Equal(t, 3, DistinctClients(sampleBookings()))
	assert.Equal(t, 0, DistinctClients(nil))
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus(sampleBookings())
	assert.Equal(t, 2, counts["completed"])
	assert.Equal(t, 1, counts["pending"])
	assert.Equal(t, 1, counts["cancelled"])
	assert.Equal(t, 0, counts["confirmed"])
}

func TestShapeProfessional(t *testing.T) {
	summary := ShapeProfessional("Michelle Johnson", sampleBookings())

	assert.Equal(t, "Michelle Johnson", summary.ProfessionalName)
	assert.InDelta(t, 125.50, summary.TotalRevenue, 0.001)
	assert.Equal(t, 3, summary.TotalClients)
	assert.False(t, summary.Demo)
}

// ----------------------------------------------------
// Fixture
// ----------------------------------------------------

func fixtureAt(now time.Time) *FixtureSource {
	return &FixtureSource{Now: func() time.Time { return now }}
}

func TestFixtureClientDashboard(t *testing.T) {
	s := fixtureAt(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	summary, err := s.ClientDashboard(context.Background(), "any")
	require.NoError(t, err)

	assert.True(t, summary.Demo)
	assert.Equal(t, "Jessica Smith", summary.UserName)
	assert.Len(t, summary.Bookings, 5)
	assert.InDelta(t, 845.75, summary.TotalSpent, 0.001)
	assert.Equal(t, 2, summary.StatusCounts["confirmed"])
	assert.Equal(t, 3, summary.StatusCounts["completed"])
}

func TestFixtureProfessionalDashboard(t *testing.T) {
	s := fixtureAt(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	summary, err := s.ProfessionalDashboard(context.Background(), "any")
	require.NoError(t, err)

	assert.True(t, summary.Demo)
	assert.Equal(t, "Michelle Johnson", summary.ProfessionalName)
	assert.Len(t, summary.Bookings, 7)

	// revenue counts completed rows only; the cancelled 200 stays out
	assert.InDelta(t, 670.00, summary.TotalRevenue, 0.001)
	assert.Equal(t, 6, summary.TotalClients)
	assert.Equal(t, 1, summary.StatusCounts["cancelled"])
}

// ----------------------------------------------------
// Fallback
// ----------------------------------------------------

type stubSource struct {
	client    *ClientSummary
	pro       *ProfessionalSummary
	clientErr error
	proErr    error
}

func (s *stubSource) ClientDashboard(ctx context.Context, userID string) (*ClientSummary, error) {
	return s.client, s.clientErr
}

func (s *stubSource) ProfessionalDashboard(ctx context.Context, userID string) (*ProfessionalSummary, error) {
	return s.pro, s.proErr
}

func TestFallbackPrefersLive(t *testing.T) {
	live := &stubSource{
		client: &ClientSummary{UserName: "Real User", Bookings: sampleBookings()},
	}
	f := NewFallback(live, NewFixtureSource())

	summary, err := f.ClientDashboard(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Real User", summary.UserName)
	assert.False(t, summary.Demo)
}

func TestFallbackOnError(t *testing.T) {
	live := &stubSource{clientErr: errors.New("store down")}
	f := NewFallback(live, NewFixtureSource())

	summary, err := f.ClientDashboard(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, summary.Demo)
	assert.Equal(t, "Jessica Smith", summary.UserName)
}

func TestFallbackOnEmptyBookings(t *testing.T) {
	live := &stubSource{
		pro: &ProfessionalSummary{ProfessionalName: "New Pro", Bookings: nil},
	}
	f := NewFallback(live, NewFixtureSource())

	summary, err := f.ProfessionalDashboard(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, summary.Demo)
}
