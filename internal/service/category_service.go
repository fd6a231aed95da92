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

var ErrCategoryExists = errors.New("category already exists")

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo *repository.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create adds a category. Names are matched case-insensitively so "Venues"
// and "venues" cannot coexist. Admin only.
func (s *CategoryService) Create(ctx context.Context, createdBy uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if existing, _ := s.categoryRepo.GetByName(ctx, req.Name); existing != nil {
		return nil, ErrCategoryExists
	}

	now := time.Now()
	category := &models.Category{
		ID:        uuid.New(),
		Name:      req.Name,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("Category created", zap.String("name", category.Name))

	resp := toCategoryResponse(category)
	return &resp, nil
}

func (s *CategoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = toCategoryResponse(c)
	}
	return out, nil
}
