package models

import "time"

// Placeholders shown when a referenced user or listing has been deleted.
const (
	DeletedUserName     = "Deleted user"
	DeletedListingTitle = "Deleted listing"
)

// ConversationKey identifies one derived conversation thread.
type ConversationKey struct {
	OtherUserID string
	ListingID   string
}

// ConversationSummary is derived from the message stream on read; it is
// never persisted. One summary exists per (counterparty, listing) pair.
type ConversationSummary struct {
	OtherUserID     string    `json:"other_user_id"`
	OtherUserName   string    `json:"other_user_name"`
	OtherUserImage  *string   `json:"other_user_image,omitempty"`
	ListingID       string    `json:"listing_id"`
	ListingTitle    string    `json:"listing_title"`
	ListingImage    *string   `json:"listing_image,omitempty"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime time.Time `json:"last_message_time"`
	UnreadCount     int       `json:"unread_count"`
}
