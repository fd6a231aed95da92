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
	ErrListingNotFound  = errors.New("listing not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrAlreadyReviewed  = errors.New("listing already reviewed by this user")
	ErrVendorNotActive  = errors.New("vendor profile is not active")
)

const defaultPageSize = 20

type ListingService struct {
	listingRepo  *repository.ListingRepository
	vendorRepo   *repository.VendorRepository
	categoryRepo *repository.CategoryRepository
	logger       *zap.Logger
}

func NewListingService(
	listingRepo *repository.ListingRepository,
	vendorRepo *repository.VendorRepository,
	categoryRepo *repository.CategoryRepository,
	logger *zap.Logger,
) *ListingService {
	return &ListingService{
		listingRepo:  listingRepo,
		vendorRepo:   vendorRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create publishes a new listing under the caller's vendor profile. The
// vendor must already be verified and active.
func (s *ListingService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateListingRequest) (*dto.ListingResponse, error) {
	vendor, err := s.vendorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, ErrVendorNotFound
	}
	if vendor.Status != models.VendorStatusActive {
		return nil, ErrVendorNotActive
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, ErrCategoryNotFound
	}

	packages := make([]models.Package, len(req.Packages))
	for i, p := range req.Packages {
		packages[i] = models.Package{
			Name:          p.Name,
			Description:   p.Description,
			Price:         p.Price,
			VenueCapacity: p.VenueCapacity,
		}
	}

	now := time.Now()
	listing := &models.Listing{
		ID:          uuid.New(),
		VendorID:    vendor.ID,
		CategoryID:  categoryID,
		Title:       req.Title,
		Description: req.Description,
		Expertise:   req.Expertise,
		Duration:    req.Duration,
		Staff:       req.Staff,
		Packages:    packages,
		MainImage:   req.MainImage,
		Gallery:     req.Gallery,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Lat:         req.Lat,
		Lng:         req.Lng,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		Reviews:     []models.Review{},
		Status:      models.ListingStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	s.logger.Info("Listing created",
		zap.String("listing_id", listing.ID.String()),
		zap.String("vendor_id", vendor.ID.String()),
	)

	resp := toListingResponse(listing)
	return &resp, nil
}

// GetByID returns one listing and bumps its view counter. A failed counter
// update is logged but does not fail the read.
func (s *ListingService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ListingResponse, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrListingNotFound
	}
	if listing.Status == models.ListingStatusDeleted {
		return nil, ErrListingNotFound
	}

	if err := s.listingRepo.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn("Failed to increment view count",
			zap.String("listing_id", id.String()),
			zap.Error(err),
		)
	} else {
		listing.ViewCount++
	}

	resp := toListingResponse(listing)
	return &resp, nil
}

// List returns one page of the public catalogue with the given filters.
func (s *ListingService) List(ctx context.Context, q *dto.ListListingsQuery) (*dto.ListListingsResponse, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}

	filter := repository.ListingFilter{
		City:   q.City,
		Search: q.Search,
		Limit:  uint64(limit),
		Offset: uint64((page - 1) * limit),
	}
	if q.Category != "" {
		categoryID, err := uuid.Parse(q.Category)
		if err != nil {
			return nil, ErrCategoryNotFound
		}
		filter.CategoryID = &categoryID
	}
	if q.MinPrice > 0 {
		filter.MinPrice = &q.MinPrice
	}
	if q.MaxPrice > 0 {
		filter.MaxPrice = &q.MaxPrice
	}

	listings, err := s.listingRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.listingRepo.CountFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ListingResponse, len(listings))
	for i, l := range listings {
		out[i] = toListingResponse(l)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &dto.ListListingsResponse{
		Listings:    out,
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
	}, nil
}

func (s *ListingService) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]dto.ListingResponse, error) {
	if _, err := s.vendorRepo.GetByID(ctx, vendorID); err != nil {
		return nil, ErrVendorNotFound
	}

	listings, err := s.listingRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ListingResponse, len(listings))
	for i, l := range listings {
		out[i] = toListingResponse(l)
	}
	return out, nil
}

func (s *ListingService) Update(ctx context.Context, userID, listingID uuid.UUID, req *dto.UpdateListingRequest) (*dto.ListingResponse, error) {
	listing, err := s.ownedListing(ctx, userID, listingID)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, ErrCategoryNotFound
		}
		if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
			return nil, ErrCategoryNotFound
		}
		listing.CategoryID = categoryID
	}
	if req.Title != "" {
		listing.Title = req.Title
	}
	if req.Description != "" {
		listing.Description = req.Description
	}
	if req.Expertise != nil {
		listing.Expertise = req.Expertise
	}
	if req.Duration != "" {
		listing.Duration = req.Duration
	}
	if req.Staff != "" {
		listing.Staff = req.Staff
	}
	if len(req.Packages) > 0 {
		packages := make([]models.Package, len(req.Packages))
		for i, p := range req.Packages {
			packages[i] = models.Package{
				Name:          p.Name,
				Description:   p.Description,
				Price:         p.Price,
				VenueCapacity: p.VenueCapacity,
			}
		}
		listing.Packages = packages
	}
	if req.MainImage != "" {
		listing.MainImage = req.MainImage
	}
	if req.Gallery != nil {
		listing.Gallery = req.Gallery
	}
	if req.Address != "" {
		listing.Address = req.Address
	}
	if req.City != "" {
		listing.City = req.City
	}
	if req.State != "" {
		listing.State = req.State
	}
	if req.Country != "" {
		listing.Country = req.Country
	}
	if req.Lat != nil {
		listing.Lat = *req.Lat
	}
	if req.Lng != nil {
		listing.Lng = *req.Lng
	}
	if req.MinPrice != nil {
		listing.MinPrice = *req.MinPrice
	}
	if req.MaxPrice != nil {
		listing.MaxPrice = *req.MaxPrice
	}
	if req.Status != "" {
		listing.Status = models.ListingStatus(req.Status)
	}

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	resp := toListingResponse(listing)
	return &resp, nil
}

// Delete soft-deletes a listing; the row survives for bookings that
// reference it but drops out of every catalogue query.
func (s *ListingService) Delete(ctx context.Context, userID, listingID uuid.UUID) error {
	if _, err := s.ownedListing(ctx, userID, listingID); err != nil {
		return err
	}
	return s.listingRepo.SetStatus(ctx, listingID, models.ListingStatusDeleted)
}

// AddReview appends a rating to the listing and refreshes the aggregates on
// both the listing and its vendor. One review per user per listing.
func (s *ListingService) AddReview(ctx context.Context, userID, listingID uuid.UUID, req *dto.AddReviewRequest) (*dto.ListingResponse, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, ErrListingNotFound
	}
	if listing.Status != models.ListingStatusActive {
		return nil, ErrListingNotFound
	}

	for _, review := range listing.Reviews {
		if review.UserID == userID {
			return nil, ErrAlreadyReviewed
		}
	}

	listing.Reviews = append(listing.Reviews, models.Review{
		UserID: userID,
		Rating: req.Rating,
		Date:   time.Now(),
	})

	var sum int
	for _, review := range listing.Reviews {
		sum += review.Rating
	}
	listing.TotalRating = float64(sum) / float64(len(listing.Reviews))

	if err := s.listingRepo.UpdateReviews(ctx, listingID, listing.Reviews, listing.TotalRating); err != nil {
		return nil, err
	}

	if err := s.refreshVendorRating(ctx, listing.VendorID); err != nil {
		s.logger.Warn("Failed to refresh vendor rating",
			zap.String("vendor_id", listing.VendorID.String()),
			zap.Error(err),
		)
	}

	resp := toListingResponse(listing)
	return &resp, nil
}

func (s *ListingService) refreshVendorRating(ctx context.Context, vendorID uuid.UUID) error {
	listings, err := s.listingRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return err
	}

	var sum int
	var count int
	for _, l := range listings {
		for _, review := range l.Reviews {
			sum += review.Rating
			count++
		}
	}

	average := 0.0
	if count > 0 {
		average = float64(sum) / float64(count)
	}

	return s.vendorRepo.UpdateRating(ctx, vendorID, average, count)
}

func (s *ListingService) ownedListing(ctx context.Context, userID, listingID uuid.UUID) (*models.Listing, error) {
	vendor, err := s.vendorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, ErrVendorNotFound
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, ErrListingNotFound
	}
	if listing.VendorID != vendor.ID {
		return nil, ErrNotOwner
	}

	return listing, nil
}
