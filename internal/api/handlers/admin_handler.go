package handlers

import (
	"wedconnect/internal/dto"
	"wedconnect/internal/models"
	"wedconnect/internal/service"
	"wedconnect/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminHandler struct {
	adminService  *service.AdminService
	vendorService *service.VendorService
	logger        *zap.Logger
}

func NewAdminHandler(adminService *service.AdminService, vendorService *service.VendorService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		vendorService: vendorService,
		logger:        logger,
	}
}

// Overview godoc
// @Summary Platform overview
// @Description Aggregate counters and month-to-date revenue for the admin dashboard
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.OverviewResponse
// @Failure 403 {object} map[string]string
// @Router /api/v1/admin/overview [get]
func (h *AdminHandler) Overview(c *fiber.Ctx) error {
	resp, err := h.adminService.Overview(c.Context())
	if err != nil {
		h.logger.Error("Failed to build overview", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build overview",
		})
	}

	return c.JSON(resp)
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Security Bearer
// @Success 200 {array} dto.UserResponse
// @Router /api/v1/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	resp, err := h.adminService.ListUsers(c.Context(), page, limit)
	if err != nil {
		h.logger.Error("Failed to list users", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list users",
		})
	}

	return c.JSON(resp)
}

// ListVendors godoc
// @Summary List vendors
// @Tags admin
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Security Bearer
// @Success 200 {array} dto.VendorResponse
// @Router /api/v1/admin/vendors [get]
func (h *AdminHandler) ListVendors(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	resp, err := h.adminService.ListVendors(c.Context(), page, limit)
	if err != nil {
		h.logger.Error("Failed to list vendors", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list vendors",
		})
	}

	return c.JSON(resp)
}

// ListBookings godoc
// @Summary List bookings
// @Tags admin
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Security Bearer
// @Success 200 {array} dto.BookingResponse
// @Router /api/v1/admin/bookings [get]
func (h *AdminHandler) ListBookings(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	resp, err := h.adminService.ListBookings(c.Context(), page, limit)
	if err != nil {
		h.logger.Error("Failed to list bookings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list bookings",
		})
	}

	return c.JSON(resp)
}

// SetUserStatus godoc
// @Summary Enable or disable a user account
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserStatusRequest true "Active flag"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/admin/users/{id}/status [put]
func (h *AdminHandler) SetUserStatus(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var req dto.UpdateUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.adminService.SetUserActive(c.Context(), userID, req.IsActive); err != nil {
		if err == service.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		h.logger.Error("Failed to update user status", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user status",
		})
	}

	return c.JSON(fiber.Map{"message": "User status updated"})
}

// VerifyVendor godoc
// @Summary Verify a vendor profile
// @Description Marks the vendor verified, activates the profile and notifies the owner
// @Tags admin
// @Produce json
// @Param id path string true "Vendor ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/admin/vendors/{id}/verify [put]
func (h *AdminHandler) VerifyVendor(c *fiber.Ctx) error {
	vendorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid vendor ID",
		})
	}

	if err := h.vendorService.Verify(c.Context(), vendorID); err != nil {
		if err == service.ErrVendorNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Vendor not found",
			})
		}
		h.logger.Error("Failed to verify vendor", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to verify vendor",
		})
	}

	return c.JSON(fiber.Map{"message": "Vendor verified"})
}

// SetVendorStatus godoc
// @Summary Moderate a vendor profile
// @Description Force-set a vendor's status, e.g. suspend a misbehaving vendor
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID"
// @Param request body dto.UpdateVendorStatusRequest true "New status"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/admin/vendors/{id}/status [put]
func (h *AdminHandler) SetVendorStatus(c *fiber.Ctx) error {
	vendorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid vendor ID",
		})
	}

	var req dto.UpdateVendorStatusRequest
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

	if err := h.vendorService.SetStatus(c.Context(), vendorID, models.VendorStatus(req.Status)); err != nil {
		if err == service.ErrVendorNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Vendor not found",
			})
		}
		h.logger.Error("Failed to update vendor status", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update vendor status",
		})
	}

	return c.JSON(fiber.Map{"message": "Vendor status updated"})
}

// SetListingStatus godoc
// @Summary Moderate a listing
// @Description Force-set a listing's status regardless of ownership
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body dto.UpdateListingStatusRequest true "New status"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/admin/listings/{id}/status [put]
func (h *AdminHandler) SetListingStatus(c *fiber.Ctx) error {
	listingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid listing ID",
		})
	}

	var req dto.UpdateListingStatusRequest
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

	if err := h.adminService.SetListingStatus(c.Context(), listingID, models.ListingStatus(req.Status)); err != nil {
		if err == service.ErrListingNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Listing not found",
			})
		}
		h.logger.Error("Failed to update listing status", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update listing status",
		})
	}

	return c.JSON(fiber.Map{"message": "Listing status updated"})
}
