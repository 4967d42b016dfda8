package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/michemobile/marketplace-api/internal/audit"
	"github.com/michemobile/marketplace-api/internal/config"
	"github.com/michemobile/marketplace-api/internal/dashboard"
	"github.com/michemobile/marketplace-api/internal/handlers"
	infraRepo "github.com/michemobile/marketplace-api/internal/infra/repository"
	"github.com/michemobile/marketplace-api/internal/middleware"
	"github.com/michemobile/marketplace-api/internal/storage"
	ucBooking "github.com/michemobile/marketplace-api/internal/usecase/booking"
	ucCertification "github.com/michemobile/marketplace-api/internal/usecase/certification"
	ucOnboarding "github.com/michemobile/marketplace-api/internal/usecase/onboarding"
	"github.com/michemobile/marketplace-api/internal/username"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	cache *redis.Client,
	s3Client storage.S3API,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	dashboardRepo := infraRepo.NewDashboardGormRepository(db)
	onboardingRepo := infraRepo.NewOnboardingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	names := username.NewChecker(onboardingRepo, cache)
	uploader := storage.NewUploader(s3Client, cfg.S3Bucket)

	liveSource := dashboard.NewLiveSource(dashboardRepo, cache)
	fixtureSource := dashboard.NewFixtureSource()
	dashboardSource := dashboard.NewFallback(liveSource, fixtureSource)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	confirmBookingUC := ucBooking.NewConfirmBooking(bookingRepo, auditDispatcher)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	// ======================================================
	// USE CASES — ONBOARDING
	// ======================================================
	submitApplicationUC := ucOnboarding.NewSubmitApplication(
		onboardingRepo,
		names,
		auditDispatcher,
	)
	uploadDocumentUC := ucCertification.NewUploadDocument(uploader)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	onboardingHandler := handlers.NewOnboardingHandler(submitApplicationUC, names, cfg)
	uploadHandler := handlers.NewUploadHandler(uploadDocumentUC)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		confirmBookingUC,
		completeBookingUC,
		cancelBookingUC,
		listBookingsUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(dashboardSource, fixtureSource)
	calendarHandler := handlers.NewCalendarHandler(db)

	catalogHandler := handlers.NewCatalogHandler()
	professionalsHandler := handlers.NewProfessionalsHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/catalog/services", catalogHandler.Services)
		api.GET("/catalog/time-slots", catalogHandler.TimeSlots)
		api.GET("/professionals", professionalsHandler.List)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/oauth/:provider", authHandler.OAuthStart)

		// ------------------------------
		// ONBOARDING (pre-account)
		// ------------------------------
		api.POST("/onboarding/professional", onboardingHandler.Submit)
		api.POST("/onboarding/validate/:step", onboardingHandler.ValidateStep)
		api.GET("/onboarding/username-availability", onboardingHandler.UsernameAvailability)
		api.POST("/onboarding/certifications", uploadHandler.UploadCertification)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/me/profile", meHandler.CreateProfile)

			secured.GET("/me/bookings", bookingHandler.List)
			secured.GET("/me/calendar/day", calendarHandler.Day)
			secured.GET("/me/calendar/week", calendarHandler.Week)
			secured.GET("/me/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings/options", bookingHandler.Options)
			secured.POST("/bookings", bookingHandler.Create)
			secured.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			secured.PATCH("/bookings/:id/complete", bookingHandler.Complete)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
		}

		// ------------------------------
		// DASHBOARDS
		// ------------------------------
		// demo=true serves the mock dataset with or without a token
		dashboards := api.Group("/dashboard")
		dashboards.Use(middleware.DemoAwareAuthMiddleware(cfg))
		{
			dashboards.GET("/client", dashboardHandler.Client)
			dashboards.GET("/professional", dashboardHandler.Professional)
		}
	}
}
