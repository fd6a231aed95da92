package handlers

import (
	"wedconnect/internal/dto"
	"wedconnect/internal/service"
	"wedconnect/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RecommendationHandler struct {
	recService *service.RecommendationService
	logger     *zap.Logger
}

func NewRecommendationHandler(recService *service.RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recService: recService,
		logger:     logger,
	}
}

// Recommend godoc
// @Summary Get AI listing recommendations
// @Description Match the couple's budget, style, location and free-text preferences against active listings
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.RecommendationRequest true "Preferences"
// @Security Bearer
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/recommendations [post]
func (h *RecommendationHandler) Recommend(c *fiber.Ctx) error {
	var req dto.RecommendationRequest
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

	resp, err := h.recService.Recommend(c.Context(), &req)
	if err != nil {
		switch err {
		case service.ErrNoListings:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No listings available to process recommendations",
			})
		case service.ErrInferenceFailed, service.ErrMalformedResponse:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Failed to get recommendations",
			})
		}
		h.logger.Error("Recommendation request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get recommendations",
		})
	}

	return c.JSON(resp)
}
