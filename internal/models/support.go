package models

import "time"

const (
	TicketStatusOpen   = "open"
	TicketStatusClosed = "closed"
)

type TicketReply struct {
	From      string    `json:"from"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type SupportTicket struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	UserName  string        `json:"user_name"`
	UserEmail string        `json:"user_email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    string        `json:"status"`
	Replies   []TicketReply `json:"replies"`
	CreatedAt time.Time     `json:"created_at"`
}

type SupportTicketCreate struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}
