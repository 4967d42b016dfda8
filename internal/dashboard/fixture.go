package dashboard

import (
	"context"
	"time"
)

// FixtureSource serves the fixed demo dataset: the payload behind
// demo=true and the substitute whenever live data is unavailable.
type FixtureSource struct {
	// Now is injectable so the relative dates are stable in tests.
	Now func() time.Time
}

func NewFixtureSource() *FixtureSource {
	return &FixtureSource{Now: time.Now}
}

const (
	fixtureClientName       = "Jessica Smith"
	fixtureProfessionalName = "Michelle Johnson"
)

func (s *FixtureSource) clientBookings() []BookingView {
	now := s.Now()
	return []BookingView{
		{
			ID:               "b1",
			BookingDate:      now.AddDate(0, 0, 7),
			ServiceName:      "Full Face Makeup Application",
			ProfessionalName: "Michelle Johnson",
			Location:         "Client's Home, Brooklyn",
			Status:           "confirmed",
			TotalAmount:      125.00,
		},
		{
			ID:               "b2",
			BookingDate:      now.AddDate(0, 0, -2),
			ServiceName:      "Eyelash Extensions - Full Set",
			ProfessionalName: "Sarah Williams",
			Location:         "Client's Office, Manhattan",
			Status:           "completed",
			TotalAmount:      220.50,
		},
		{
			ID:               "b3",
			BookingDate:      now.AddDate(0, 0, -14),
			ServiceName:      "Hair Styling - Special Occasion",
			ProfessionalName: "Alex Chen",
			Location:         "Client's Home, Manhattan",
			Status:           "completed",
			TotalAmount:      180.25,
		},
		{
			ID:               "b4",
			BookingDate:      now.AddDate(0, 0, 3),
			ServiceName:      "Manicure & Pedicure",
			ProfessionalName: "Olivia Garcia",
			Location:         "Client's Home, Queens",
			Status:           "confirmed",
			TotalAmount:      95.00,
		},
		{
			ID:               "b5",
			BookingDate:      now.AddDate(0, 0, -5),
			ServiceName:      "Bridal Makeup Trial",
			ProfessionalName: "Michelle Johnson",
			Location:         "Client's Home, Brooklyn",
			Status:           "completed",
			TotalAmount:      225.00,
		},
	}
}

func (s *FixtureSource) professionalBookings() []BookingView {
	now := s.Now()
	return []BookingView{
		{
			ID:          "p1",
			BookingDate: now.AddDate(0, 0, 2),
			ClientID:    "c1",
			ClientName:  "Jessica Smith",
			ServiceName: "Full Face Makeup Application",
			Location:    "Client's Home, Brooklyn",
			Status:      "confirmed",
			TotalAmount: 125.00,
		},
		{
			ID:          "p2",
			BookingDate: now.AddDate(0, 0, 4),
			ClientID:    "c2",
			ClientName:  "Emma Thompson",
			ServiceName: "Bridal Makeup",
			Location:    "Hotel Suite, Manhattan",
			Status:      "pending",
			TotalAmount: 350.00,
		},
		{
			ID:          "p3",
			BookingDate: now.AddDate(0, 0, 1),
			ClientID:    "c3",
			ClientName:  "Sophia Garcia",
			ServiceName: "Hair Styling - Special Occasion",
			Location:    "Client's Home, Manhattan",
			Status:      "confirmed",
			TotalAmount: 180.00,
		},
		{
			ID:          "p4",
			BookingDate: now.AddDate(0, 0, -3),
			ClientID:    "c4",
			ClientName:  "Olivia Wilson",
			ServiceName: "Eyelash Extensions - Fill",
			Location:    "Client's Office, Manhattan",
			Status:      "completed",
			TotalAmount: 95.00,
		},
		{
			ID:          "p5",
			BookingDate: now.AddDate(0, 0, -7),
			ClientID:    "c5",
			ClientName:  "Madison Brown",
			ServiceName: "Bridal Hair and Makeup",
			Location:    "Reception Venue, Brooklyn",
			Status:      "completed",
			TotalAmount: 425.00,
		},
		{
			ID:          "p6",
			BookingDate: now.AddDate(0, 0, -10),
			ClientID:    "c1",
			ClientName:  "Jessica Smith",
			ServiceName: "Makeup Application - Party",
			Location:    "Client's Home, Queens",
			Status:      "completed",
			TotalAmount: 150.00,
		},
		{
			ID:          "p7",
			BookingDate: now.AddDate(0, 0, -5),
			ClientID:    "c6",
			ClientName:  "Ava Martinez",
			ServiceName: "Full Set Eyelash Extensions",
			Location:    "Client's Home, Bronx",
			Status:      "cancelled",
			TotalAmount: 200.00,
		},
	}
}

func (s *FixtureSource) ClientDashboard(ctx context.Context, userID string) (*ClientSummary, error) {
	summary := ShapeClient(fixtureClientName, s.clientBookings())
	summary.Demo = true
	return summary, nil
}

func (s *FixtureSource) ProfessionalDashboard(ctx context.Context, userID string) (*ProfessionalSummary, error) {
	summary := ShapeProfessional(fixtureProfessionalName, s.professionalBookings())
	summary.Demo = true
	return summary, nil
}
