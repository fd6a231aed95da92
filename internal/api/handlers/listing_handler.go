package handlers

import (
	"wedconnect/internal/dto"
	"wedconnect/internal/service"
	"wedconnect/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ListingHandler struct {
	listingService *service.ListingService
	logger         *zap.Logger
}

func NewListingHandler(listingService *service.ListingService, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
		logger:         logger,
	}
}

// Create godoc
// @Summary Create a listing
// @Description Publish a service listing under the caller's vendor profile
// @Tags listings
// @Accept json
// @Produce json
// @Param request body dto.CreateListingRequest true "Listing"
// @Security Bearer
// @Success 201 {object} dto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/v1/listings [post]
func (h *ListingHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateListingRequest
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

	resp, err := h.listingService.Create(c.Context(), userID, &req)
	if err != nil {
		switch err {
		case service.ErrVendorNotFound:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Vendor profile required",
			})
		case service.ErrVendorNotActive:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Vendor profile is not active",
			})
		case service.ErrCategoryNotFound:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
		h.logger.Error("Failed to create listing", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create listing",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary Browse the listing catalogue
// @Description Filter active listings by category, city, price range and free-text search
// @Tags listings
// @Produce json
// @Param category query string false "Category ID"
// @Param city query string false "City"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param q query string false "Search in title and description"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListListingsResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/listings [get]
func (h *ListingHandler) List(c *fiber.Ctx) error {
	var q dto.ListListingsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid query parameters",
		})
	}
	if err := validation.Struct(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp, err := h.listingService.List(c.Context(), &q)
	if err != nil {
		if err == service.ErrCategoryNotFound {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid category",
			})
		}
		h.logger.Error("Failed to list listings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list listings",
		})
	}

	return c.JSON(resp)
}

// Get godoc
// @Summary Get a listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} dto.ListingResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/listings/{id} [get]
func (h *ListingHandler) Get(c *fiber.Ctx) error {
	listingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid listing ID",
		})
	}

	resp, err := h.listingService.GetByID(c.Context(), listingID)
	if err != nil {
		if err == service.ErrListingNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Listing not found",
			})
		}
		h.logger.Error("Failed to load listing", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load listing",
		})
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Update a listing
// @Tags listings
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body dto.UpdateListingRequest true "Listing update"
// @Security Bearer
// @Success 200 {object} dto.ListingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/listings/{id} [put]
func (h *ListingHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	listingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid listing ID",
		})
	}

	var req dto.UpdateListingRequest
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

	resp, err := h.listingService.Update(c.Context(), userID, listingID, &req)
	if err != nil {
		return h.listingError(c, err, "Failed to update listing")
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete a listing
// @Description Soft-deletes the listing; it disappears from the catalogue but existing bookings keep their reference
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/listings/{id} [delete]
func (h *ListingHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	listingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid listing ID",
		})
	}

	if err := h.listingService.Delete(c.Context(), userID, listingID); err != nil {
		return h.listingError(c, err, "Failed to delete listing")
	}

	return c.JSON(fiber.Map{"message": "Listing deleted"})
}

// AddReview godoc
// @Summary Review a listing
// @Description Add a 1-5 rating; one review per user per listing
// @Tags listings
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body dto.AddReviewRequest true "Review"
// @Security Bearer
// @Success 200 {object} dto.ListingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/listings/{id}/reviews [post]
func (h *ListingHandler) AddReview(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	listingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid listing ID",
		})
	}

	var req dto.AddReviewRequest
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

	resp, err := h.listingService.AddReview(c.Context(), userID, listingID, &req)
	if err != nil {
		switch err {
		case service.ErrListingNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Listing not found",
			})
		case service.ErrAlreadyReviewed:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Listing already reviewed",
			})
		}
		h.logger.Error("Failed to add review", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add review",
		})
	}

	return c.JSON(resp)
}

func (h *ListingHandler) listingError(c *fiber.Ctx, err error, fallback string) error {
	switch err {
	case service.ErrListingNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Listing not found",
		})
	case service.ErrVendorNotFound:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Vendor profile required",
		})
	case service.ErrNotOwner:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Listing does not belong to this vendor",
		})
	case service.ErrCategoryNotFound:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category not found",
		})
	}
	h.logger.Error(fallback, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fallback,
	})
}
