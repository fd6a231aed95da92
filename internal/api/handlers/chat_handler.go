package handlers

import (
	"wedconnect/internal/dto"
	"wedconnect/internal/service"
	"wedconnect/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Start godoc
// @Summary Start a conversation
// @Description Opens a thread with the recipient, or returns the existing one
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.StartConversationRequest true "Recipient"
// @Security Bearer
// @Success 201 {object} dto.ConversationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/conversations [post]
func (h *ChatHandler) Start(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.StartConversationRequest
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

	resp, err := h.chatService.Start(c.Context(), userID, &req)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Recipient not found",
			})
		case service.ErrSelfConversation:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot start a conversation with yourself",
			})
		}
		h.logger.Error("Failed to start conversation", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to start conversation",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List the caller's conversations
// @Tags chat
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.ConversationResponse
// @Router /api/v1/conversations [get]
func (h *ChatHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.chatService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list conversations", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list conversations",
		})
	}

	return c.JSON(resp)
}

// Messages godoc
// @Summary Get a conversation's messages
// @Description Returns the thread oldest-first and marks incoming messages as read
// @Tags chat
// @Produce json
// @Param id path string true "Conversation ID"
// @Security Bearer
// @Success 200 {array} dto.MessageResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/conversations/{id}/messages [get]
func (h *ChatHandler) Messages(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid conversation ID",
		})
	}

	resp, err := h.chatService.Messages(c.Context(), userID, convID)
	if err != nil {
		return h.chatError(c, err, "Failed to load messages")
	}

	return c.JSON(resp)
}

// SendMessage godoc
// @Summary Send a message
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param request body dto.SendMessageRequest true "Message"
// @Security Bearer
// @Success 201 {object} dto.MessageResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/conversations/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid conversation ID",
		})
	}

	var req dto.SendMessageRequest
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

	resp, err := h.chatService.SendMessage(c.Context(), userID, convID, &req)
	if err != nil {
		return h.chatError(c, err, "Failed to send message")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ChatHandler) chatError(c *fiber.Ctx, err error, fallback string) error {
	switch err {
	case service.ErrConversationNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Conversation not found",
		})
	case service.ErrNotMember:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not a member of this conversation",
		})
	}
	h.logger.Error(fallback, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fallback,
	})
}
