package repositories

import (
	"context"
	"database/sql"
	"time"

	"marketBack/internal/models"
)

type MessageRepository struct {
	DB *sql.DB
}

const messageColumns = `id, from_user_id, to_user_id, listing_id, content, message_type, is_read, created_at`

func scanMessages(rows *sql.Rows) ([]models.Message, error) {
	messages := []models.Message{}
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(
			&msg.ID, &msg.FromUserID, &msg.ToUserID, &msg.ListingID,
			&msg.Content, &msg.MessageType, &msg.Read, &msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (r *MessageRepository) CreateMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	query := `
        INSERT INTO messages (id, from_user_id, to_user_id, listing_id, content, message_type, is_read, created_at)
        VALUES (?, ?, ?, ?, ?, ?, FALSE, ?)
    `
	msg.CreatedAt = time.Now().UTC()
	msg.Read = false
	_, err := r.DB.ExecContext(ctx, query,
		msg.ID, msg.FromUserID, msg.ToUserID, msg.ListingID,
		msg.Content, msg.MessageType, msg.CreatedAt,
	)
	if err != nil {
		return models.Message{}, err
	}
	return msg, nil
}

// ListForUser returns all messages the user sent or received, newest first.
// The conversation aggregator relies on this ordering.
func (r *MessageRepository) ListForUser(ctx context.Context, userID string, limit int) ([]models.Message, error) {
	query := `
        SELECT ` + messageColumns + `
        FROM messages
        WHERE from_user_id = ? OR to_user_id = ?
        ORDER BY created_at DESC
        LIMIT ?`
	rows, err := r.DB.QueryContext(ctx, query, userID, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

// ListThread returns the messages of one (listing, user pair) conversation
// in chronological order, capped at limit.
func (r *MessageRepository) ListThread(ctx context.Context, listingID, userID, otherUserID string, limit int) ([]models.Message, error) {
	query := `
        SELECT ` + messageColumns + `
        FROM messages
        WHERE listing_id = ?
          AND ((from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?))
        ORDER BY created_at ASC
        LIMIT ?`
	rows, err := r.DB.QueryContext(ctx, query, listingID, userID, otherUserID, otherUserID, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (r *MessageRepository) UnreadTotal(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM messages WHERE to_user_id = ? AND is_read = FALSE`
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&count)
	return count, err
}

// UnreadByConversation returns unread counts keyed by (listing, sender) in
// one grouped query, so the aggregator never counts per conversation.
func (r *MessageRepository) UnreadByConversation(ctx context.Context, userID string) (map[models.ConversationKey]int, error) {
	query := `
        SELECT listing_id, from_user_id, COUNT(*)
        FROM messages
        WHERE to_user_id = ? AND is_read = FALSE
        GROUP BY listing_id, from_user_id`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[models.ConversationKey]int{}
	for rows.Next() {
		var key models.ConversationKey
		var count int
		if err := rows.Scan(&key.ListingID, &key.OtherUserID, &count); err != nil {
			return nil, err
		}
		counts[key] = count
	}
	return counts, rows.Err()
}

// MarkRead flips unread messages of one conversation to read. Zero matched
// rows is still success, the operation is idempotent.
func (r *MessageRepository) MarkRead(ctx context.Context, listingID, fromUserID, toUserID string) error {
	query := `
        UPDATE messages SET is_read = TRUE
        WHERE listing_id = ? AND from_user_id = ? AND to_user_id = ? AND is_read = FALSE`
	_, err := r.DB.ExecContext(ctx, query, listingID, fromUserID, toUserID)
	return err
}

func (r *MessageRepository) DeleteForUser(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM messages WHERE from_user_id = ? OR to_user_id = ?`, userID, userID)
	return err
}

func (r *MessageRepository) ListRecent(ctx context.Context, limit int) ([]models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages ORDER BY created_at DESC LIMIT ?`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (r *MessageRepository) CountMessages(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`).Scan(&count)
	return count, err
}
