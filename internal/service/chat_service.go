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
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotMember            = errors.New("user is not a member of this conversation")
	ErrSelfConversation     = errors.New("cannot start a conversation with yourself")
)

type ChatService struct {
	convRepo *repository.ConversationRepository
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewChatService(convRepo *repository.ConversationRepository, userRepo *repository.UserRepository, logger *zap.Logger) *ChatService {
	return &ChatService{
		convRepo: convRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Start opens a conversation with the recipient, or returns the existing one
// if the pair already has a thread.
func (s *ChatService) Start(ctx context.Context, userID uuid.UUID, req *dto.StartConversationRequest) (*dto.ConversationResponse, error) {
	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if recipientID == userID {
		return nil, ErrSelfConversation
	}
	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		return nil, ErrUserNotFound
	}

	if existing, err := s.convRepo.FindByMembers(ctx, userID, recipientID); err == nil {
		return s.toConversationResponse(ctx, existing, userID)
	}

	now := time.Now()
	conv := &models.Conversation{
		ID:        uuid.New(),
		MemberA:   userID,
		MemberB:   recipientID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.BookingID != "" {
		bookingID, err := uuid.Parse(req.BookingID)
		if err != nil {
			return nil, ErrBookingNotFound
		}
		conv.BookingID = &bookingID
	}

	if err := s.convRepo.Create(ctx, conv); err != nil {
		return nil, err
	}

	s.logger.Info("Conversation started", zap.String("conversation_id", conv.ID.String()))

	return s.toConversationResponse(ctx, conv, userID)
}

func (s *ChatService) List(ctx context.Context, userID uuid.UUID) ([]dto.ConversationResponse, error) {
	conversations, err := s.convRepo.ListByMember(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ConversationResponse, 0, len(conversations))
	for _, conv := range conversations {
		resp, err := s.toConversationResponse(ctx, conv, userID)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// SendMessage appends a message to the conversation and updates its
// bookkeeping (last message pointer, recipient's unread counter).
func (s *ChatService) SendMessage(ctx context.Context, userID, convID uuid.UUID, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	conv, err := s.memberConversation(ctx, userID, convID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		ID:             uuid.New(),
		ConversationID: convID,
		SenderID:       userID,
		Content:        req.Content,
		CreatedAt:      time.Now(),
	}

	if err := s.convRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	recipientIsA := conv.MemberB == userID
	if err := s.convRepo.RecordMessage(ctx, convID, message.ID, recipientIsA); err != nil {
		s.logger.Warn("Failed to update conversation bookkeeping",
			zap.String("conversation_id", convID.String()),
			zap.Error(err),
		)
	}

	resp := toMessageResponse(message)
	return &resp, nil
}

// Messages returns the full thread oldest-first and marks the other side's
// messages as read.
func (s *ChatService) Messages(ctx context.Context, userID, convID uuid.UUID) ([]dto.MessageResponse, error) {
	conv, err := s.memberConversation(ctx, userID, convID)
	if err != nil {
		return nil, err
	}

	messages, err := s.convRepo.ListMessages(ctx, convID)
	if err != nil {
		return nil, err
	}

	if err := s.convRepo.MarkMessagesRead(ctx, convID, userID); err != nil {
		s.logger.Warn("Failed to mark messages read", zap.Error(err))
	}
	if err := s.convRepo.ResetUnread(ctx, convID, conv.MemberA == userID); err != nil {
		s.logger.Warn("Failed to reset unread counter", zap.Error(err))
	}

	out := make([]dto.MessageResponse, len(messages))
	for i, m := range messages {
		out[i] = toMessageResponse(m)
	}
	return out, nil
}

func (s *ChatService) memberConversation(ctx context.Context, userID, convID uuid.UUID) (*models.Conversation, error) {
	conv, err := s.convRepo.GetByID(ctx, convID)
	if err != nil {
		return nil, ErrConversationNotFound
	}
	if conv.MemberA != userID && conv.MemberB != userID {
		return nil, ErrNotMember
	}
	return conv, nil
}

func (s *ChatService) toConversationResponse(ctx context.Context, conv *models.Conversation, viewerID uuid.UUID) (*dto.ConversationResponse, error) {
	resp := dto.ConversationResponse{
		ID:        conv.ID.String(),
		MemberA:   conv.MemberA.String(),
		MemberB:   conv.MemberB.String(),
		CreatedAt: conv.CreatedAt.Format(time.RFC3339),
	}

	if conv.BookingID != nil {
		resp.BookingID = conv.BookingID.String()
	}

	if conv.MemberA == viewerID {
		resp.UnreadCount = conv.UnreadA
	} else {
		resp.UnreadCount = conv.UnreadB
	}

	if conv.LastMessageID != nil {
		last, err := s.convRepo.GetMessage(ctx, *conv.LastMessageID)
		if err == nil {
			m := toMessageResponse(last)
			resp.LastMessage = &m
		}
	}

	return &resp, nil
}
