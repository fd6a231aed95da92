package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wedconnect/internal/api"
	"wedconnect/internal/api/handlers"
	"wedconnect/internal/repository"
	"wedconnect/internal/service"
	"wedconnect/pkg/auth"
	"wedconnect/pkg/config"
	"wedconnect/pkg/logger"
	"wedconnect/pkg/postgres"

	"go.uber.org/zap"
)

// @title WedConnect API
// @version 1.0
// @description Wedding vendor marketplace with AI-assisted listing recommendations

// @contact.name API Support
// @contact.email support@wedconnect.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting WedConnect service")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	vendorRepo := repository.NewVendorRepository(db, appLogger)
	listingRepo := repository.NewListingRepository(db, appLogger)
	bookingRepo := repository.NewBookingRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	convRepo := repository.NewConversationRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Services
	emailService := service.NewEmailService(&cfg.Resend, appLogger)

	llmService, err := service.NewLLMService(&cfg.GigaChat, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	authService := service.NewAuthService(userRepo, jwtManager, emailService, appLogger)
	userService := service.NewUserService(userRepo, vendorRepo, appLogger)
	vendorService := service.NewVendorService(vendorRepo, userRepo, emailService, appLogger)
	listingService := service.NewListingService(listingRepo, vendorRepo, categoryRepo, appLogger)
	bookingService := service.NewBookingService(bookingRepo, listingRepo, vendorRepo, userRepo, emailService, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, appLogger)
	chatService := service.NewChatService(convRepo, userRepo, appLogger)
	adminService := service.NewAdminService(userRepo, vendorRepo, listingRepo, bookingRepo, appLogger)
	recService := service.NewRecommendationService(listingRepo, llmService, cfg.Matching.RequestTimeout, appLogger)

	// Handlers
	h := api.Handlers{
		Auth:           handlers.NewAuthHandler(authService, appLogger),
		User:           handlers.NewUserHandler(userService, appLogger),
		Vendor:         handlers.NewVendorHandler(vendorService, listingService, appLogger),
		Listing:        handlers.NewListingHandler(listingService, appLogger),
		Booking:        handlers.NewBookingHandler(bookingService, appLogger),
		Category:       handlers.NewCategoryHandler(categoryService, appLogger),
		Recommendation: handlers.NewRecommendationHandler(recService, appLogger),
		Chat:           handlers.NewChatHandler(chatService, appLogger),
		Admin:          handlers.NewAdminHandler(adminService, vendorService, appLogger),
	}

	app := api.SetupRouter(h, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
