package handlers

import (
	"wedconnect/internal/dto"
	"wedconnect/internal/service"
	"wedconnect/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VendorHandler struct {
	vendorService  *service.VendorService
	listingService *service.ListingService
	logger         *zap.Logger
}

func NewVendorHandler(vendorService *service.VendorService, listingService *service.ListingService, logger *zap.Logger) *VendorHandler {
	return &VendorHandler{
		vendorService:  vendorService,
		listingService: listingService,
		logger:         logger,
	}
}

// Create godoc
// @Summary Create a vendor profile
// @Description Register a vendor business profile; requires a vendor role account
// @Tags vendors
// @Accept json
// @Produce json
// @Param request body dto.CreateVendorRequest true "Vendor profile"
// @Security Bearer
// @Success 201 {object} dto.VendorResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/vendors [post]
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateVendorRequest
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

	resp, err := h.vendorService.Create(c.Context(), userID, &req)
	if err != nil {
		switch err {
		case service.ErrVendorExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Vendor profile already exists",
			})
		case service.ErrNotVendor:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Account does not have the vendor role",
			})
		}
		h.logger.Error("Failed to create vendor profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create vendor profile",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get godoc
// @Summary Get a vendor profile
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} dto.VendorResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/vendors/{id} [get]
func (h *VendorHandler) Get(c *fiber.Ctx) error {
	vendorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid vendor ID",
		})
	}

	resp, err := h.vendorService.GetByID(c.Context(), vendorID)
	if err != nil {
		if err == service.ErrVendorNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Vendor not found",
			})
		}
		h.logger.Error("Failed to load vendor", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load vendor",
		})
	}

	return c.JSON(resp)
}

// GetMine godoc
// @Summary Get the caller's vendor profile
// @Tags vendors
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.VendorResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/vendors/me [get]
func (h *VendorHandler) GetMine(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.vendorService.GetByUserID(c.Context(), userID)
	if err != nil {
		if err == service.ErrVendorNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Vendor profile not found",
			})
		}
		h.logger.Error("Failed to load vendor profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load vendor profile",
		})
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Update the caller's vendor profile
// @Tags vendors
// @Accept json
// @Produce json
// @Param request body dto.UpdateVendorRequest true "Vendor update"
// @Security Bearer
// @Success 200 {object} dto.VendorResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/vendors/me [put]
func (h *VendorHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.UpdateVendorRequest
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

	resp, err := h.vendorService.Update(c.Context(), userID, &req)
	if err != nil {
		if err == service.ErrVendorNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Vendor profile not found",
			})
		}
		h.logger.Error("Failed to update vendor profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update vendor profile",
		})
	}

	return c.JSON(resp)
}

// List godoc
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {array} dto.VendorResponse
// @Router /api/v1/vendors [get]
func (h *VendorHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	resp, err := h.vendorService.List(c.Context(), page, limit)
	if err != nil {
		h.logger.Error("Failed to list vendors", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list vendors",
		})
	}

	return c.JSON(resp)
}

// Listings godoc
// @Summary List a vendor's listings
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {array} dto.ListingResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/vendors/{id}/listings [get]
func (h *VendorHandler) Listings(c *fiber.Ctx) error {
	vendorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid vendor ID",
		})
	}

	resp, err := h.listingService.ListByVendor(c.Context(), vendorID)
	if err != nil {
		if err == service.ErrVendorNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Vendor not found",
			})
		}
		h.logger.Error("Failed to list vendor listings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list vendor listings",
		})
	}

	return c.JSON(resp)
}
