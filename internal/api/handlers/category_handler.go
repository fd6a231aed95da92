package handlers

import (
	"wedconnect/internal/dto"
	"wedconnect/internal/service"
	"wedconnect/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	resp, err := h.categoryService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list categories",
		})
	}

	return c.JSON(resp)
}

// Create godoc
// @Summary Create a category
// @Description Admin only
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Security Bearer
// @Success 201 {object} dto.CategoryResponse
// @Failure 409 {object} map[string]string
// @Router /api/v1/admin/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp, err := h.categoryService.Create(c.Context(), userID, &req)
	if err != nil {
		if err == service.ErrCategoryExists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Category already exists",
			})
		}
		h.logger.Error("Failed to create category", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}
