package service

import (
	"context"
	"errors"

	"wedconnect/internal/dto"
	"wedconnect/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrVendorNotFound = errors.New("vendor not found")

type UserService struct {
	userRepo   *repository.UserRepository
	vendorRepo *repository.VendorRepository
	logger     *zap.Logger
}

func NewUserService(userRepo *repository.UserRepository, vendorRepo *repository.VendorRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo:   userRepo,
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateProfile applies the non-empty fields of the request to the profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.ProfileImage != "" {
		user.ProfileImage = req.ProfileImage
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.City != "" {
		user.City = req.City
	}
	if req.State != "" {
		user.State = req.State
	}
	if req.Country != "" {
		user.Country = req.Country
	}
	if req.Zip != "" {
		user.Zip = req.Zip
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// SaveVendor toggles a vendor in the user's saved list and reports whether
// the vendor is saved after the call.
func (s *UserService) SaveVendor(ctx context.Context, userID, vendorID uuid.UUID) (bool, error) {
	if _, err := s.vendorRepo.GetByID(ctx, vendorID); err != nil {
		return false, ErrVendorNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, ErrUserNotFound
	}

	saved := user.SavedVendors
	for i, id := range saved {
		if id == vendorID {
			saved = append(saved[:i], saved[i+1:]...)
			return false, s.userRepo.SetSavedVendors(ctx, userID, saved)
		}
	}

	saved = append(saved, vendorID)
	return true, s.userRepo.SetSavedVendors(ctx, userID, saved)
}
