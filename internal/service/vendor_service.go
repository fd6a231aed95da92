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
	ErrVendorExists = errors.New("vendor profile already exists")
	ErrNotVendor    = errors.New("user does not have a vendor profile")
	ErrNotOwner     = errors.New("resource does not belong to this user")
)

type VendorService struct {
	vendorRepo *repository.VendorRepository
	userRepo   *repository.UserRepository
	email      *EmailService
	logger     *zap.Logger
}

func NewVendorService(vendorRepo *repository.VendorRepository, userRepo *repository.UserRepository, email *EmailService, logger *zap.Logger) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
		userRepo:   userRepo,
		email:      email,
		logger:     logger,
	}
}

// Create registers a vendor profile for the user. New profiles start in
// PENDING status and stay hidden until an admin verifies them.
func (s *VendorService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if user.Role != models.RoleVendor {
		return nil, ErrNotVendor
	}

	if existing, _ := s.vendorRepo.GetByUserID(ctx, userID); existing != nil {
		return nil, ErrVendorExists
	}

	now := time.Now()
	vendor := &models.Vendor{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		Bio:          req.Bio,
		BusinessName: req.BusinessName,
		Tagline:      req.Tagline,
		Description:  req.Description,
		ProfileImage: req.ProfileImage,
		CoverImage:   req.CoverImage,
		MemberSince:  now,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Website:      req.Website,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		Status:       models.VendorStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	s.logger.Info("Vendor profile created",
		zap.String("vendor_id", vendor.ID.String()),
		zap.String("business_name", vendor.BusinessName),
	)

	resp := toVendorResponse(vendor)
	return &resp, nil
}

func (s *VendorService) GetByID(ctx context.Context, id uuid.UUID) (*dto.VendorResponse, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrVendorNotFound
	}

	resp := toVendorResponse(vendor)
	return &resp, nil
}

func (s *VendorService) GetByUserID(ctx context.Context, userID uuid.UUID) (*dto.VendorResponse, error) {
	vendor, err := s.vendorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, ErrVendorNotFound
	}

	resp := toVendorResponse(vendor)
	return &resp, nil
}

func (s *VendorService) Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	vendor, err := s.vendorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, ErrVendorNotFound
	}

	if req.Name != "" {
		vendor.Name = req.Name
	}
	if req.Bio != "" {
		vendor.Bio = req.Bio
	}
	if req.BusinessName != "" {
		vendor.BusinessName = req.BusinessName
	}
	if req.Tagline != "" {
		vendor.Tagline = req.Tagline
	}
	if req.Description != "" {
		vendor.Description = req.Description
	}
	if req.ProfileImage != "" {
		vendor.ProfileImage = req.ProfileImage
	}
	if req.CoverImage != "" {
		vendor.CoverImage = req.CoverImage
	}
	if req.ContactEmail != "" {
		vendor.ContactEmail = req.ContactEmail
	}
	if req.ContactPhone != "" {
		vendor.ContactPhone = req.ContactPhone
	}
	if req.Website != "" {
		vendor.Website = req.Website
	}
	if req.Address != "" {
		vendor.Address = req.Address
	}
	if req.City != "" {
		vendor.City = req.City
	}
	if req.State != "" {
		vendor.State = req.State
	}
	if req.Country != "" {
		vendor.Country = req.Country
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	resp := toVendorResponse(vendor)
	return &resp, nil
}

func (s *VendorService) List(ctx context.Context, page, limit int) ([]dto.VendorResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
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

// Verify marks a vendor verified, activates the profile and notifies the
// owner by email. Admin only.
func (s *VendorService) Verify(ctx context.Context, vendorID uuid.UUID) error {
	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return ErrVendorNotFound
	}

	if err := s.vendorRepo.SetVerified(ctx, vendorID, models.VendorStatusActive); err != nil {
		return err
	}

	if err := s.email.SendVendorVerified(ctx, vendor.ContactEmail, vendor.BusinessName); err != nil {
		s.logger.Error("Failed to send vendor verification email", zap.Error(err))
	}

	s.logger.Info("Vendor verified", zap.String("vendor_id", vendorID.String()))
	return nil
}

func (s *VendorService) SetStatus(ctx context.Context, vendorID uuid.UUID, status models.VendorStatus) error {
	if _, err := s.vendorRepo.GetByID(ctx, vendorID); err != nil {
		return ErrVendorNotFound
	}
	return s.vendorRepo.SetStatus(ctx, vendorID, status)
}
