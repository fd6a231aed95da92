package dto

type StartConversationRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid"`
	BookingID   string `json:"booking_id" validate:"omitempty,uuid"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type MessageResponse struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id"`
	SenderID       string `json:"sender_id"`
	Content        string `json:"content"`
	IsRead         bool   `json:"is_read"`
	CreatedAt      string `json:"created_at"`
}

type ConversationResponse struct {
	ID          string           `json:"id"`
	MemberA     string           `json:"member_a"`
	MemberB     string           `json:"member_b"`
	BookingID   string           `json:"booking_id,omitempty"`
	LastMessage *MessageResponse `json:"last_message,omitempty"`
	UnreadCount int              `json:"unread_count"`
	CreatedAt   string           `json:"created_at"`
}
