package models

import "time"

const (
	MessageTypeText  = "text"
	MessageTypeAudio = "audio"
	MessageTypeImage = "image"
)

type Message struct {
	ID          string    `json:"id"`
	FromUserID  string    `json:"from_user_id"`
	ToUserID    string    `json:"to_user_id"`
	ListingID   string    `json:"listing_id"`
	Content     string    `json:"content"`
	MessageType string    `json:"message_type"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

type MessageCreate struct {
	ToUserID    string `json:"to_user_id"`
	ListingID   string `json:"listing_id"`
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
}
