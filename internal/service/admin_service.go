package service

import (
	"context"
	"time"

	"wedconnect/internal/dto"
	"wedconnect/internal/models"
	"wedconnect/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recentBookingsLimit = 10

type AdminService struct {
	userRepo    *repository.UserRepository
	vendorRepo  *repository.VendorRepository
	listingRepo *repository.ListingRepository
	bookingRepo *repository.BookingRepository
	logger      *zap.Logger
}

func NewAdminService(
	userRepo *repository.UserRepository,
	vendorRepo *repository.VendorRepository,
	listingRepo *repository.ListingRepository,
	bookingRepo *repository.BookingRepository,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		vendorRepo:  vendorRepo,
		listingRepo: listingRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Overview aggregates the platform dashboard numbers. Monthly figures are
// calendar-month-to-date in server time.
func (s *AdminService) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	totalCustomers, err := s.userRepo.CountByRole(ctx, models.RoleCustomer)
	if err != nil {
		return nil, err
	}
	totalVendorUsers, err := s.userRepo.CountByRole(ctx, models.RoleVendor)
	if err != nil {
		return nil, err
	}
	totalVendors, err := s.vendorRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalListings, err := s.listingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeListings, err := s.listingRepo.CountByStatus(ctx, models.ListingStatusActive)
	if err != nil {
		return nil, err
	}
	totalBookings, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	monthlyRevenue, err := s.bookingRepo.SumPaidSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	pendingVerifications, err := s.vendorRepo.CountPendingVerification(ctx)
	if err != nil {
		return nil, err
	}
	newSignups, err := s.userRepo.CountCreatedSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	recent, err := s.bookingRepo.ListRecent(ctx, recentBookingsLimit)
	if err != nil {
		return nil, err
	}

	return &dto.OverviewResponse{
		TotalUsers:           totalCustomers + totalVendorUsers,
		TotalVendors:         totalVendors,
		TotalListings:        totalListings,
		TotalBookings:        totalBookings,
		MonthlyRevenue:       monthlyRevenue,
		PendingVerifications: pendingVerifications,
		NewSignupsThisMonth:  newSignups,
		ActiveListings:       activeListings,
		RecentBookings:       toBookingResponses(recent),
	}, nil
}

func (s *AdminService) ListUsers(ctx context.Context, page, limit int) ([]dto.UserResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}

	users, err := s.userRepo.List(ctx, uint64(limit), uint64((page-1)*limit))
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out, nil
}

func (s *AdminService) ListVendors(ctx context.Context, page, limit int) ([]dto.VendorResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}

	vendors, err := s.vendorRepo.List(ctx, uint64(limit), uint64((page-1)*limit))
	if err != nil {
		return nil, err
	}

	out := make([]dto.VendorResponse, len(vendors))
	for i, v := range vendors {
		out[i] = toVendorResponse(v)
	}
	return out, nil
}

func (s *AdminService) ListBookings(ctx context.Context, page, limit int) ([]dto.BookingResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}

	bookings, err := s.bookingRepo.List(ctx, uint64(limit), uint64((page-1)*limit))
	if err != nil {
		return nil, err
	}

	return toBookingResponses(bookings), nil
}

// SetUserActive enables or disables an account. Disabled users keep their
// data but cannot log in.
func (s *AdminService) SetUserActive(ctx context.Context, userID uuid.UUID, active bool) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return ErrUserNotFound
	}

	if err := s.userRepo.SetActive(ctx, userID, active); err != nil {
		return err
	}

	s.logger.Info("User active flag changed",
		zap.String("user_id", userID.String()),
		zap.Bool("active", active),
	)
	return nil
}

// SetListingStatus force-sets a listing's status, bypassing ownership. Used
// for moderation.
func (s *AdminService) SetListingStatus(ctx context.Context, listingID uuid.UUID, status models.ListingStatus) error {
	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		return ErrListingNotFound
	}

	if err := s.listingRepo.SetStatus(ctx, listingID, status); err != nil {
		return err
	}

	s.logger.Info("Listing status changed by admin",
		zap.String("listing_id", listingID.String()),
		zap.String("status", string(status)),
	)
	return nil
}
