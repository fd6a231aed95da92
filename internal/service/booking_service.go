package service

import (
	"context"
	"errors"
	"time"

	"wedconnect/internal/dto"
	"wedconnect/internal/models"
	"wedconnect/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrPastDate          = errors.New("booking date must be in the future")
)

type BookingService struct {
	bookingRepo *repository.BookingRepository
	listingRepo *repository.ListingRepository
	vendorRepo  *repository.VendorRepository
	userRepo    *repository.UserRepository
	email       *EmailService
	logger      *zap.Logger
}

func NewBookingService(
	bookingRepo *repository.BookingRepository,
	listingRepo *repository.ListingRepository,
	vendorRepo *repository.VendorRepository,
	userRepo *repository.UserRepository,
	email *EmailService,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		vendorRepo:  vendorRepo,
		userRepo:    userRepo,
		email:       email,
		logger:      logger,
	}
}

// Create places a booking request against a listing. The vendor and customer
// contact fields are denormalized onto the booking row at creation time.
func (s *BookingService) Create(ctx context.Context, customerID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		return nil, ErrListingNotFound
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, ErrListingNotFound
	}
	if listing.Status != models.ListingStatusActive {
		return nil, ErrListingNotFound
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}
	if !date.After(time.Now()) {
		return nil, ErrPastDate
	}

	vendor, err := s.vendorRepo.GetByID(ctx, listing.VendorID)
	if err != nil {
		return nil, ErrVendorNotFound
	}

	customer, err := s.userRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()
	booking := &models.Booking{
		ID:            uuid.New(),
		VendorID:      vendor.ID,
		VendorName:    vendor.BusinessName,
		VendorEmail:   vendor.ContactEmail,
		CustomerID:    customer.ID,
		CustomerName:  customer.FullName,
		CustomerEmail: customer.Email,
		ListingID:     listing.ID,
		ServiceTitle:  listing.Title,
		Date:          date,
		Message:       req.Message,
		Amount:        req.Amount,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.email.SendBookingRequested(ctx, booking); err != nil {
		s.logger.Error("Failed to send booking request email", zap.Error(err))
	}

	s.logger.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("listing_id", listing.ID.String()),
	)

	resp := toBookingResponse(booking)
	return &resp, nil
}

// GetByID returns a booking visible to its customer or its vendor.
func (s *BookingService) GetByID(ctx context.Context, userID, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	if err := s.authorize(ctx, userID, booking); err != nil {
		return nil, err
	}

	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *BookingService) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]dto.BookingResponse, error) {
	bookings, err := s.bookingRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toBookingResponses(bookings), nil
}

func (s *BookingService) ListForVendor(ctx context.Context, userID uuid.UUID) ([]dto.BookingResponse, error) {
	vendor, err := s.vendorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, ErrVendorNotFound
	}

	bookings, err := s.bookingRepo.ListByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, err
	}
	return toBookingResponses(bookings), nil
}

// UpdateStatus moves a booking along its lifecycle. Vendors confirm or
// cancel pending requests; customers may cancel their own bookings. The
// customer is notified on every transition.
func (s *BookingService) UpdateStatus(ctx context.Context, userID, bookingID uuid.UUID, status models.BookingStatus) (*dto.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	if err := s.authorize(ctx, userID, booking); err != nil {
		return nil, err
	}

	// Customers can only cancel; confirmation is the vendor's call.
	if booking.CustomerID == userID && status != models.BookingStatusCanceled {
		return nil, ErrInvalidTransition
	}

	if !canTransition(booking.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	booking.Status = status

	if err := s.email.SendBookingStatusChanged(ctx, booking); err != nil {
		s.logger.Error("Failed to send booking status email", zap.Error(err))
	}

	s.logger.Info("Booking status updated",
		zap.String("booking_id", bookingID.String()),
		zap.String("status", string(status)),
	)

	resp := toBookingResponse(booking)
	return &resp, nil
}

// canTransition encodes the booking lifecycle: a pending booking can be
// confirmed or canceled, a confirmed one only canceled. Terminal states
// never move again.
func canTransition(from, to models.BookingStatus) bool {
	switch from {
	case models.BookingStatusPending:
		return to == models.BookingStatusConfirmed || to == models.BookingStatusCanceled
	case models.BookingStatusConfirmed:
		return to == models.BookingStatusCanceled
	default:
		return false
	}
}

func (s *BookingService) authorize(ctx context.Context, userID uuid.UUID, booking *models.Booking) error {
	if booking.CustomerID == userID {
		return nil
	}

	vendor, err := s.vendorRepo.GetByUserID(ctx, userID)
	if err == nil && vendor.ID == booking.VendorID {
		return nil
	}

	return ErrNotOwner
}

func toBookingResponses(bookings []*models.Booking) []dto.BookingResponse {
	out := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = toBookingResponse(b)
	}
	return out
}
