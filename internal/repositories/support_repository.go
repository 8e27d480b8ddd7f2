package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"marketBack/internal/models"
)

type SupportRepository struct {
	DB *sql.DB
}

const ticketColumns = `id, user_id, user_name, user_email, subject, message, status, replies, created_at`

func scanTickets(rows *sql.Rows) ([]models.SupportTicket, error) {
	tickets := []models.SupportTicket{}
	for rows.Next() {
		var t models.SupportTicket
		var replies sql.NullString
		if err := rows.Scan(&t.ID, &t.UserID, &t.UserName, &t.UserEmail,
			&t.Subject, &t.Message, &t.Status, &replies, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Replies = decodeReplies(replies)
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *SupportRepository) CreateTicket(ctx context.Context, t models.SupportTicket) (models.SupportTicket, error) {
	query := `
        INSERT INTO support_tickets (id, user_id, user_name, user_email, subject, message, status, replies, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	t.CreatedAt = time.Now().UTC()
	t.Status = models.TicketStatusOpen
	t.Replies = []models.TicketReply{}
	_, err := r.DB.ExecContext(ctx, query,
		t.ID, t.UserID, t.UserName, t.UserEmail, t.Subject, t.Message, t.Status,
		encodeJSON(t.Replies), t.CreatedAt,
	)
	if err != nil {
		return models.SupportTicket{}, err
	}
	return t, nil
}

func (r *SupportRepository) GetTicketsByUser(ctx context.Context, userID string) ([]models.SupportTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM support_tickets WHERE user_id = ? ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *SupportRepository) GetAllTickets(ctx context.Context) ([]models.SupportTicket, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+ticketColumns+` FROM support_tickets ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

// AppendReply appends one reply to the ticket's reply array in place, a
// single atomic statement rather than read-modify-write.
func (r *SupportRepository) AppendReply(ctx context.Context, ticketID string, reply models.TicketReply) error {
	query := `
        UPDATE support_tickets
        SET replies = JSON_ARRAY_APPEND(replies, '$', CAST(? AS JSON))
        WHERE id = ?
    `
	result, err := r.DB.ExecContext(ctx, query, encodeJSON(reply), ticketID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrTicketNotFound
	}
	return nil
}

func (r *SupportRepository) CountOpen(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM support_tickets WHERE status = ?`, models.TicketStatusOpen).Scan(&count)
	return count, err
}

func decodeReplies(raw sql.NullString) []models.TicketReply {
	if !raw.Valid || raw.String == "" {
		return []models.TicketReply{}
	}
	var replies []models.TicketReply
	if err := json.Unmarshal([]byte(raw.String), &replies); err != nil {
		return []models.TicketReply{}
	}
	return replies
}
