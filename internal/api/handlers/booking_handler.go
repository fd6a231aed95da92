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

type BookingHandler struct {
	bookingService *service.BookingService
	logger         *zap.Logger
}

func NewBookingHandler(bookingService *service.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// Create godoc
// @Summary Request a booking
// @Description Place a booking request against a listing; the vendor is notified by email
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking request"
// @Security Bearer
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateBookingRequest
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

	resp, err := h.bookingService.Create(c.Context(), userID, &req)
	if err != nil {
		switch err {
		case service.ErrListingNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Listing not found",
			})
		case service.ErrPastDate:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Booking date must be in the future",
			})
		}
		h.logger.Error("Failed to create booking", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create booking",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get godoc
// @Summary Get a booking
// @Description Visible only to the booking's customer and vendor
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Security Bearer
// @Success 200 {object} dto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/bookings/{id} [get]
func (h *BookingHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking ID",
		})
	}

	resp, err := h.bookingService.GetByID(c.Context(), userID, bookingID)
	if err != nil {
		return h.bookingError(c, err, "Failed to load booking")
	}

	return c.JSON(resp)
}

// ListMine godoc
// @Summary List the caller's bookings as a customer
// @Tags bookings
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.BookingResponse
// @Router /api/v1/bookings [get]
func (h *BookingHandler) ListMine(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.bookingService.ListForCustomer(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list bookings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list bookings",
		})
	}

	return c.JSON(resp)
}

// ListForVendor godoc
// @Summary List bookings received by the caller's vendor profile
// @Tags bookings
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.BookingResponse
// @Failure 403 {object} map[string]string
// @Router /api/v1/bookings/vendor [get]
func (h *BookingHandler) ListForVendor(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.bookingService.ListForVendor(c.Context(), userID)
	if err != nil {
		if err == service.ErrVendorNotFound {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Vendor profile required",
			})
		}
		h.logger.Error("Failed to list vendor bookings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list vendor bookings",
		})
	}

	return c.JSON(resp)
}

// UpdateStatus godoc
// @Summary Confirm or cancel a booking
// @Description Vendors confirm or cancel pending requests; customers can cancel their own bookings
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "New status"
// @Security Bearer
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/bookings/{id}/status [put]
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking ID",
		})
	}

	var req dto.UpdateBookingStatusRequest
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

	resp, err := h.bookingService.UpdateStatus(c.Context(), userID, bookingID, models.BookingStatus(req.Status))
	if err != nil {
		if err == service.ErrInvalidTransition {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid status transition",
			})
		}
		return h.bookingError(c, err, "Failed to update booking status")
	}

	return c.JSON(resp)
}

func (h *BookingHandler) bookingError(c *fiber.Ctx, err error, fallback string) error {
	switch err {
	case service.ErrBookingNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	case service.ErrNotOwner:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Booking is not visible to this user",
		})
	}
	h.logger.Error(fallback, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fallback,
	})
}
