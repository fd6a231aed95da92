package api

import (
	"wedconnect/docs"
	"wedconnect/internal/api/handlers"
	"wedconnect/internal/models"
	"wedconnect/pkg/auth"
	"wedconnect/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth           *handlers.AuthHandler
	User           *handlers.UserHandler
	Vendor         *handlers.VendorHandler
	Listing        *handlers.ListingHandler
	Booking        *handlers.BookingHandler
	Category       *handlers.CategoryHandler
	Recommendation *handlers.RecommendationHandler
	Chat           *handlers.ChatHandler
	Admin          *handlers.AdminHandler
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo // ensure docs package is imported and init() is called
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Public routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)
	authGroup.Post("/verify-email", h.Auth.VerifyEmail)
	authGroup.Post("/resend-verification", h.Auth.ResendVerification)
	authGroup.Post("/forgot-password", h.Auth.ForgotPassword)
	authGroup.Post("/reset-password", h.Auth.ResetPassword)

	api.Get("/categories", h.Category.List)
	api.Get("/listings", h.Listing.List)
	api.Get("/listings/:id", h.Listing.Get)
	api.Get("/vendors", h.Vendor.List)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(jwtManager, appLogger))

	// /vendors/me must be registered before /vendors/:id
	protected.Get("/vendors/me", h.Vendor.GetMine)
	protected.Put("/vendors/me", h.Vendor.Update)
	api.Get("/vendors/:id", h.Vendor.Get)
	api.Get("/vendors/:id/listings", h.Vendor.Listings)
	protected.Post("/vendors", h.Vendor.Create)

	users := protected.Group("/users")
	users.Get("/me", h.User.GetMe)
	users.Put("/me", h.User.UpdateMe)
	users.Post("/me/saved-vendors/:id", h.User.SaveVendor)

	protected.Post("/listings", h.Listing.Create)
	protected.Put("/listings/:id", h.Listing.Update)
	protected.Delete("/listings/:id", h.Listing.Delete)
	protected.Post("/listings/:id/reviews", h.Listing.AddReview)

	bookings := protected.Group("/bookings")
	bookings.Post("", h.Booking.Create)
	bookings.Get("", h.Booking.ListMine)
	bookings.Get("/vendor", h.Booking.ListForVendor)
	bookings.Get("/:id", h.Booking.Get)
	bookings.Put("/:id/status", h.Booking.UpdateStatus)

	protected.Post("/recommendations", h.Recommendation.Recommend)

	conversations := protected.Group("/conversations")
	conversations.Post("", h.Chat.Start)
	conversations.Get("", h.Chat.List)
	conversations.Get("/:id/messages", h.Chat.Messages)
	conversations.Post("/:id/messages", h.Chat.SendMessage)

	// Admin routes
	admin := protected.Group("/admin", middleware.RequireRole(appLogger, string(models.RoleAdmin)))
	admin.Get("/overview", h.Admin.Overview)
	admin.Get("/users", h.Admin.ListUsers)
	admin.Get("/vendors", h.Admin.ListVendors)
	admin.Get("/bookings", h.Admin.ListBookings)
	admin.Put("/users/:id/status", h.Admin.SetUserStatus)
	admin.Put("/vendors/:id/verify", h.Admin.VerifyVendor)
	admin.Put("/vendors/:id/status", h.Admin.SetVendorStatus)
	admin.Put("/listings/:id/status", h.Admin.SetListingStatus)
	admin.Post("/categories", h.Category.Create)

	return app
}
