package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a two-party thread, optionally tied to a booking.
// Unread counters are kept per member.
type Conversation struct {
	ID            uuid.UUID  `db:"id"`
	MemberA       uuid.UUID  `db:"member_a"`
	MemberB       uuid.UUID  `db:"member_b"`
	BookingID     *uuid.UUID `db:"booking_id"`
	LastMessageID *uuid.UUID `db:"last_message_id"`
	UnreadA       int        `db:"unread_a"`
	UnreadB       int        `db:"unread_b"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

type Message struct {
	ID             uuid.UUID `db:"id"`
	ConversationID uuid.UUID `db:"conversation_id"`
	SenderID       uuid.UUID `db:"sender_id"`
	Content        string    `db:"content"`
	IsRead         bool      `db:"is_read"`
	CreatedAt      time.Time `db:"created_at"`
}
