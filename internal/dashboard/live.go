package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/michemobile/marketplace-api/internal/models"
)

type Repository interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	GetProfessionalByProfileID(ctx context.Context, profileID string) (*models.Professional, error)
	ListClientBookings(ctx context.Context, clientID string) ([]models.Booking, error)
	ListProfessionalBookings(ctx context.Context, professionalID string) ([]models.Booking, error)
}

// LiveSource shapes summaries from the store. Professional summaries are
// cached briefly in redis; cache failures are ignored, the store answers.
type LiveSource struct {
	repo     Repository
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewLiveSource(repo Repository, cache *redis.Client) *LiveSource {
	return &LiveSource{
		repo:     repo,
		cache:    cache,
		cacheTTL: time.Minute,
	}
}

func clientView(b models.Booking) BookingView {
	return BookingView{
		ID:               b.ID,
		BookingDate:      b.BookingDate,
		ServiceName:      b.Service.Name,
		ProfessionalName: b.Professional.Profile.FullName(),
		Location:         b.Location,
		Status:           b.Status,
		TotalAmount:      b.TotalAmount,
	}
}

func professionalView(b models.Booking) BookingView {
	return BookingView{
		ID:          b.ID,
		BookingDate: b.BookingDate,
		ServiceName: b.Service.Name,
		ClientID:    b.ClientID,
		ClientName:  b.Client.FullName(),
		Location:    b.Location,
		Status:      b.Status,
		TotalAmount: b.TotalAmount,
	}
}

func (s *LiveSource) ClientDashboard(ctx context.Context, userID string) (*ClientSummary, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.ListClientBookings(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, clientView(b))
	}

	return ShapeClient(profile.FullName(), views), nil
}

func (s *LiveSource) ProfessionalDashboard(ctx context.Context, userID string) (*ProfessionalSummary, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	pro, err := s.repo.GetProfessionalByProfileID(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	cacheKey := "dashboard:professional:" + pro.ID
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached ProfessionalSummary
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	bookings, err := s.repo.ListProfessionalBookings(ctx, pro.ID)
	if err != nil {
		return nil, err
	}

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, professionalView(b))
	}

	summary := ShapeProfessional(profile.FullName(), views)

	if s.cache != nil && len(views) > 0 {
		if raw, err := json.Marshal(summary); err == nil {
			s.cache.Set(ctx, cacheKey, raw, s.cacheTTL)
		}
	}

	return summary, nil
}
