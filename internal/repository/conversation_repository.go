package repository

import (
	"context"
	"time"

	"wedconnect/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var conversationColumns = []string{
	"id", "member_a", "member_b", "booking_id", "last_message_id",
	"unread_a", "unread_b", "created_at", "updated_at",
}

var messageColumns = []string{
	"id", "conversation_id", "sender_id", "content", "is_read", "created_at",
}

type ConversationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewConversationRepository(db *pgxpool.Pool, logger *zap.Logger) *ConversationRepository {
	return &ConversationRepository{
		db:     db,
		logger: logger,
	}
}

func scanConversation(row pgx.Row) (*models.Conversation, error) {
	var c models.Conversation
	err := row.Scan(
		&c.ID, &c.MemberA, &c.MemberB, &c.BookingID, &c.LastMessageID,
		&c.UnreadA, &c.UnreadB, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConversationRepository) Create(ctx context.Context, c *models.Conversation) error {
	query := squirrel.Insert("conversations").
		Columns(conversationColumns...).
		Values(
			c.ID, c.MemberA, c.MemberB, c.BookingID, c.LastMessageID,
			c.UnreadA, c.UnreadB, c.CreatedAt, c.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ConversationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Conversation, error) {
	query := squirrel.Select(conversationColumns...).
		From("conversations").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanConversation(r.db.QueryRow(ctx, sql, args...))
}

// FindByMembers returns the conversation between two users regardless of
// which side each occupies, or pgx.ErrNoRows.
func (r *ConversationRepository) FindByMembers(ctx context.Context, a, b uuid.UUID) (*models.Conversation, error) {
	query := squirrel.Select(conversationColumns...).
		From("conversations").
		Where(squirrel.Or{
			squirrel.Eq{"member_a": a, "member_b": b},
			squirrel.Eq{"member_a": b, "member_b": a},
		}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanConversation(r.db.QueryRow(ctx, sql, args...))
}

func (r *ConversationRepository) ListByMember(ctx context.Context, member uuid.UUID) ([]*models.Conversation, error) {
	query := squirrel.Select(conversationColumns...).
		From("conversations").
		Where(squirrel.Or{
			squirrel.Eq{"member_a": member},
			squirrel.Eq{"member_b": member},
		}).
		OrderBy("updated_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversations []*models.Conversation
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, c)
	}

	return conversations, rows.Err()
}

// RecordMessage updates conversation bookkeeping after a send: last message
// pointer and the recipient's unread counter.
func (r *ConversationRepository) RecordMessage(ctx context.Context, convID, messageID uuid.UUID, recipientIsA bool) error {
	unreadColumn := "unread_b"
	if recipientIsA {
		unreadColumn = "unread_a"
	}

	query := squirrel.Update("conversations").
		Set("last_message_id", messageID).
		Set(unreadColumn, squirrel.Expr(unreadColumn+" + 1")).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": convID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ConversationRepository) ResetUnread(ctx context.Context, convID uuid.UUID, readerIsA bool) error {
	unreadColumn := "unread_b"
	if readerIsA {
		unreadColumn = "unread_a"
	}

	query := squirrel.Update("conversations").
		Set(unreadColumn, 0).
		Where(squirrel.Eq{"id": convID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ConversationRepository) CreateMessage(ctx context.Context, m *models.Message) error {
	query := squirrel.Insert("messages").
		Columns(messageColumns...).
		Values(m.ID, m.ConversationID, m.SenderID, m.Content, m.IsRead, m.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ConversationRepository) GetMessage(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	query := squirrel.Select(messageColumns...).
		From("messages").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var m models.Message
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&m.ID, &m.ConversationID, &m.SenderID, &m.Content, &m.IsRead, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *ConversationRepository) ListMessages(ctx context.Context, convID uuid.UUID) ([]*models.Message, error) {
	query := squirrel.Select(messageColumns...).
		From("messages").
		Where(squirrel.Eq{"conversation_id": convID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Content, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}

	return messages, rows.Err()
}

// MarkMessagesRead marks every message in the conversation not sent by the
// reader as read.
func (r *ConversationRepository) MarkMessagesRead(ctx context.Context, convID, readerID uuid.UUID) error {
	query := squirrel.Update("messages").
		Set("is_read", true).
		Where(squirrel.Eq{"conversation_id": convID, "is_read": false}).
		Where(squirrel.NotEq{"sender_id": readerID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
