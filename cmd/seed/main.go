package main

import (
	"context"
	"log"
	"time"

	"wedconnect/internal/models"
	"wedconnect/internal/repository"
	"wedconnect/pkg/auth"
	"wedconnect/pkg/config"
	"wedconnect/pkg/logger"
	"wedconnect/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var categoryNames = []string{
	"Venues",
	"Photography",
	"Catering",
	"Decor & Florals",
	"Makeup & Styling",
	"Music & Entertainment",
	"Wedding Cards",
	"Transport",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	vendorRepo := repository.NewVendorRepository(db, appLogger)
	listingRepo := repository.NewListingRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	admin, err := seedAdmin(ctx, userRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to seed admin user", zap.Error(err))
	}

	categories, err := seedCategories(ctx, categoryRepo, admin.ID, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to seed categories", zap.Error(err))
	}

	if err := seedDemoVendor(ctx, userRepo, vendorRepo, listingRepo, categories, appLogger); err != nil {
		appLogger.Fatal("Failed to seed demo vendor", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func seedAdmin(ctx context.Context, userRepo *repository.UserRepository, logger *zap.Logger) (*models.User, error) {
	const adminEmail = "admin@wedconnect.app"

	if existing, err := userRepo.GetByEmail(ctx, adminEmail); err == nil {
		logger.Info("Admin user already exists, skipping")
		return existing, nil
	}

	password, err := auth.HashPassword("ChangeMe123!")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	admin := &models.User{
		ID:           uuid.New(),
		FullName:     "Platform Admin",
		Email:        adminEmail,
		Password:     password,
		Role:         models.RoleAdmin,
		IsVerified:   true,
		IsActive:     true,
		SavedVendors: []uuid.UUID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	logger.Info("Admin user created", zap.String("email", adminEmail))
	return admin, nil
}

func seedCategories(ctx context.Context, categoryRepo *repository.CategoryRepository, createdBy uuid.UUID, logger *zap.Logger) (map[string]uuid.UUID, error) {
	categories := make(map[string]uuid.UUID, len(categoryNames))

	for _, name := range categoryNames {
		if existing, err := categoryRepo.GetByName(ctx, name); err == nil {
			categories[name] = existing.ID
			continue
		}

		now := time.Now()
		category := &models.Category{
			ID:        uuid.New(),
			Name:      name,
			CreatedBy: createdBy,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := categoryRepo.Create(ctx, category); err != nil {
			return nil, err
		}

		categories[name] = category.ID
		logger.Info("Category created", zap.String("name", name))
	}

	return categories, nil
}

func seedDemoVendor(
	ctx context.Context,
	userRepo *repository.UserRepository,
	vendorRepo *repository.VendorRepository,
	listingRepo *repository.ListingRepository,
	categories map[string]uuid.UUID,
	logger *zap.Logger,
) error {
	const vendorEmail = "demo-vendor@wedconnect.app"

	if _, err := userRepo.GetByEmail(ctx, vendorEmail); err == nil {
		logger.Info("Demo vendor already exists, skipping")
		return nil
	}

	password, err := auth.HashPassword("ChangeMe123!")
	if err != nil {
		return err
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		FullName:     "Ayesha Khan",
		Email:        vendorEmail,
		Password:     password,
		Role:         models.RoleVendor,
		City:         "Lahore",
		Country:      "Pakistan",
		IsVerified:   true,
		IsActive:     true,
		SavedVendors: []uuid.UUID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return err
	}

	vendor := &models.Vendor{
		ID:           uuid.New(),
		UserID:       user.ID,
		Name:         "Ayesha Khan",
		Bio:          "Event planning and venue management since 2015.",
		BusinessName: "Pearl Banquet Hall",
		Tagline:      "Where your big day begins",
		Description:  "Full-service banquet hall in the heart of Lahore with in-house catering and decor.",
		MemberSince:  now,
		ContactEmail: vendorEmail,
		ContactPhone: "+92-300-1234567",
		Address:      "12-A Gulberg III",
		City:         "Lahore",
		Country:      "Pakistan",
		IsVerified:   true,
		Status:       models.VendorStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := vendorRepo.Create(ctx, vendor); err != nil {
		return err
	}

	capacity := 500
	listing := &models.Listing{
		ID:          uuid.New(),
		VendorID:    vendor.ID,
		CategoryID:  categories["Venues"],
		Title:       "Pearl Banquet Hall - Grand Wedding Package",
		Description: "Air-conditioned hall for up to 500 guests with stage decor, catering and valet parking.",
		Expertise:   []string{"Banquets", "Catering", "Decor"},
		Duration:    "8 hours",
		Staff:       "25",
		Packages: []models.Package{
			{Name: "Silver", Description: "Hall, basic decor and one-dish dinner", Price: 350000},
			{Name: "Gold", Description: "Hall, premium decor, three-dish dinner and photography", Price: 650000, VenueCapacity: &capacity},
		},
		MainImage: "https://images.wedconnect.app/demo/pearl-hall.jpg",
		Gallery:   []string{},
		Address:   "12-A Gulberg III",
		City:      "Lahore",
		Country:   "Pakistan",
		Lat:       31.5204,
		Lng:       74.3587,
		MinPrice:  350000,
		MaxPrice:  650000,
		Reviews:   []models.Review{},
		Featured:  true,
		Status:    models.ListingStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := listingRepo.Create(ctx, listing); err != nil {
		return err
	}

	logger.Info("Demo vendor seeded",
		zap.String("vendor", vendor.BusinessName),
		zap.String("listing", listing.Title),
	)
	return nil
}
