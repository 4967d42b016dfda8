package dashboard

import (
	"context"
	"log"
)

// DataSource produces dashboard summaries. Two implementations exist: Live
// (store-backed) and Fixture (demo dataset). Fallback composes them so a
// live failure degrades to demo data instead of an error page.
type DataSource interface {
	ClientDashboard(ctx context.Context, userID string) (*ClientSummary, error)
	ProfessionalDashboard(ctx context.Context, userID string) (*ProfessionalSummary, error)
}

type Fallback struct {
	live    DataSource
	fixture DataSource
}

func NewFallback(live, fixture DataSource) *Fallback {
	return &Fallback{live: live, fixture: fixture}
}

func (f *Fallback) ClientDashboard(ctx context.Context, userID string) (*ClientSummary, error) {
	summary, err := f.live.ClientDashboard(ctx, userID)
	if err == nil && len(summary.Bookings) > 0 {
		return summary, nil
	}
	if err != nil {
		log.Printf("client dashboard falling back to demo data: %v", err)
	}
	return f.fixture.ClientDashboard(ctx, userID)
}

func (f *Fallback) ProfessionalDashboard(ctx context.Context, userID string) (*ProfessionalSummary, error) {
	summary, err := f.live.ProfessionalDashboard(ctx, userID)
	if err == nil && len(summary.Bookings) > 0 {
		return summary, nil
	}
	if err != nil {
		log.Printf("professional dashboard falling back to demo data: %v", err)
	}
	return f.fixture.ProfessionalDashboard(ctx, userID)
}
