package app

import (
	"brickly-backend/internal/auth"
	"brickly-backend/internal/config"
	"brickly-backend/internal/constants"
	"brickly-backend/internal/emails"
	"brickly-backend/internal/health"
	"brickly-backend/internal/imports"
	"brickly-backend/internal/invest"
	"brickly-backend/internal/kyc"
	"brickly-backend/internal/listings"
	"brickly-backend/internal/market"
	"brickly-backend/internal/middleware"
	"brickly-backend/internal/properties"
	"brickly-backend/internal/rentals"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and routes.
// rdb may be nil; KYC status checks then skip the cache.
func CreateApp(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	app.Use(middleware.CORS(cfg.CORSOrigins))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)

	var mailer emails.Sender
	if cfg.MailAPIKey != "" {
		mailer = &emails.Client{APIKey: cfg.MailAPIKey, MailFrom: cfg.MailFrom}
	}

	kycService := &kyc.Service{DB: db, Rdb: rdb}
	requireKyc := middleware.RequireKycApproved(kycService)

	// health
	healthHandlers := &health.Handlers{DB: db, Rdb: rdb}
	app.Get("/", healthHandlers.Banner)
	app.Get("/health", healthHandlers.Check)

	// auth
	authService := &auth.Service{
		DB:         db,
		Mailer:     mailer,
		JWTSecret:  cfg.JWTSecret,
		WebBaseURL: cfg.WebBaseURL,
	}
	authHandlers := &auth.Handlers{Service: authService, AllowEmailBypass: cfg.AllowEmailBypass}
	app.Post("/auth/register", authHandlers.Register)
	app.Post("/auth/login", authHandlers.Login)
	app.Get("/auth/verify", authHandlers.Verify)

	// properties (public reads, admin mutations)
	propertiesService := &properties.Service{DB: db}
	propertiesHandlers := &properties.Handlers{Service: propertiesService}
	app.Get("/properties", propertiesHandlers.List)
	app.Get("/properties/:id", propertiesHandlers.Get)
	app.Post("/admin/rent-list", requireAuth,
		middleware.AuthorizePermission(constants.RentList), propertiesHandlers.RentList)
	app.Delete("/admin/properties/:id", requireAuth,
		middleware.AuthorizePermission(constants.DeleteProperty), propertiesHandlers.Delete)

	// listings
	listingsService := &listings.Service{DB: db}
	listingsHandlers := &listings.Handlers{Service: listingsService}
	app.Post("/listings", requireAuth,
		middleware.AuthorizePermission(constants.CreateListing), requireKyc, listingsHandlers.Create)
	app.Get("/listings/mine", requireAuth,
		middleware.AuthorizePermission(constants.ViewOwnListings), listingsHandlers.Mine)
	app.Put("/listings/:id", requireAuth,
		middleware.AuthorizePermission(constants.EditListing), listingsHandlers.Update)

	// primary issuance + portfolio
	investService := &invest.Service{DB: db}
	investHandlers := &invest.Handlers{Service: investService}
	app.Post("/invest/buy", requireAuth,
		middleware.AuthorizePermission(constants.InvestBuy), requireKyc, investHandlers.Buy)
	app.Get("/portfolio", requireAuth, investHandlers.Portfolio)

	// secondary market
	marketService := &market.Service{DB: db}
	marketHandlers := &market.Handlers{Service: marketService}
	app.Post("/market/sell-orders", requireAuth, requireKyc, marketHandlers.CreateSellOrder)
	app.Get("/market/sell-orders", marketHandlers.ListSellOrders)
	app.Post("/market/buy", requireAuth,
		middleware.AuthorizePermission(constants.MarketBuy), requireKyc, marketHandlers.Buy)

	// kyc
	kycHandlers := &kyc.Handlers{Service: kycService}
	app.Get("/kyc/me", requireAuth, kycHandlers.Me)
	app.Post("/kyc/submit", requireAuth, kycHandlers.Submit)
	app.Get("/kyc/submissions", requireAuth,
		middleware.AuthorizePermission(constants.ManageKyc), kycHandlers.Submissions)
	app.Post("/kyc/approve", requireAuth,
		middleware.AuthorizePermission(constants.ManageKyc), kycHandlers.Approve)
	app.Post("/kyc/reject", requireAuth,
		middleware.AuthorizePermission(constants.ManageKyc), kycHandlers.Reject)

	// rentals
	rentalsService := &rentals.Service{DB: db}
	rentalsHandlers := &rentals.Handlers{Service: rentalsService}
	app.Get("/rentals", rentalsHandlers.List)
	app.Post("/rentals/apply", requireAuth,
		middleware.AuthorizePermission(constants.RentalApply), rentalsHandlers.Apply)
	app.Get("/admin/rental-applications", requireAuth,
		middleware.AuthorizePermission(constants.ManageRentals), rentalsHandlers.Pending)
	app.Post("/admin/rental-applications/approve", requireAuth,
		middleware.AuthorizePermission(constants.ManageRentals), rentalsHandlers.Approve)
	app.Post("/admin/rental-applications/reject", requireAuth,
		middleware.AuthorizePermission(constants.ManageRentals), rentalsHandlers.Reject)

	// MLS imports
	var feed *imports.FeedClient
	if cfg.MLSFeedURL != "" {
		feed = imports.NewFeedClient(cfg.MLSFeedURL)
	}
	importsService := &imports.Service{DB: db, Feed: feed}
	importsHandlers := &imports.Handlers{Service: importsService, Listings: listingsService}
	app.Get("/import/listings", importsHandlers.Search)
	app.Get("/import/listings/:externalId", importsHandlers.Detail)
	app.Post("/import/confirm", requireAuth, requireKyc, importsHandlers.Confirm)
	app.Get("/admin/mls-listings", requireAuth,
		middleware.AuthorizePermission(constants.ManageMLS), importsHandlers.AdminList)
	app.Post("/admin/mls-listings/seed", requireAuth,
		middleware.AuthorizePermission(constants.ManageMLS), importsHandlers.Seed)
	app.Post("/admin/mls-listings/clear", requireAuth,
		middleware.AuthorizePermission(constants.ManageMLS), importsHandlers.Clear)

	return app
}
