package services

import (
	"context"
	"time"

	"marketBack/internal/models"

	"github.com/google/uuid"
)

const (
	conversationScanLimit = 1000
	threadLimit           = 100
	previewLength         = 50
)

// MessageStore is the slice of the message repository the conversation
// service depends on.
type MessageStore interface {
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)
	ListForUser(ctx context.Context, userID string, limit int) ([]models.Message, error)
	ListThread(ctx context.Context, listingID, userID, otherUserID string, limit int) ([]models.Message, error)
	UnreadTotal(ctx context.Context, userID string) (int, error)
	UnreadByConversation(ctx context.Context, userID string) (map[models.ConversationKey]int, error)
	MarkRead(ctx context.Context, listingID, fromUserID, toUserID string) error
}

// UserDirectory resolves user profiles in batches.
type UserDirectory interface {
	ListByIDs(ctx context.Context, ids []string) ([]models.User, error)
}

// ListingDirectory resolves listings one by one or in batches.
type ListingDirectory interface {
	GetListingByID(ctx context.Context, id string) (models.Listing, error)
	ListByIDs(ctx context.Context, ids []string) ([]models.Listing, error)
}

type ConversationService struct {
	Messages MessageStore
	Users    UserDirectory
	Listings ListingDirectory
}

func (s *ConversationService) SendMessage(ctx context.Context, fromUserID string, req models.MessageCreate) (models.Message, error) {
	if _, err := s.Listings.GetListingByID(ctx, req.ListingID); err != nil {
		return models.Message{}, err
	}
	messageType := req.MessageType
	if messageType == "" {
		messageType = models.MessageTypeText
	}
	message := models.Message{
		ID:          uuid.New().String(),
		ListingID:   req.ListingID,
		FromUserID:  fromUserID,
		ToUserID:    req.ToUserID,
		Content:     req.Content,
		MessageType: messageType,
		CreatedAt:   time.Now().UTC(),
	}
	return s.Messages.CreateMessage(ctx, message)
}

// ListConversations groups the user's recent messages into one summary per
// (other user, listing) pair, newest conversation first.
func (s *ConversationService) ListConversations(ctx context.Context, userID string) ([]models.ConversationSummary, error) {
	messages, err := s.Messages.ListForUser(ctx, userID, conversationScanLimit)
	if err != nil {
		return nil, err
	}
	unread, err := s.Messages.UnreadByConversation(ctx, userID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(messages))
	listingIDs := make([]string, 0, len(messages))
	seenUsers := make(map[string]bool)
	seenListings := make(map[string]bool)
	for _, m := range messages {
		other := m.FromUserID
		if other == userID {
			other = m.ToUserID
		}
		if !seenUsers[other] {
			seenUsers[other] = true
			userIDs = append(userIDs, other)
		}
		if !seenListings[m.ListingID] {
			seenListings[m.ListingID] = true
			listingIDs = append(listingIDs, m.ListingID)
		}
	}

	users, err := s.Users.ListByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	listings, err := s.Listings.ListByIDs(ctx, listingIDs)
	if err != nil {
		return nil, err
	}

	usersByID := make(map[string]models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}
	listingsByID := make(map[string]models.Listing, len(listings))
	for _, l := range listings {
		listingsByID[l.ID] = l
	}

	return buildConversationSummaries(userID, messages, usersByID, listingsByID, unread), nil
}

// buildConversationSummaries expects messages ordered newest first, so the
// first message seen for a pair is the conversation's latest.
func buildConversationSummaries(userID string, messages []models.Message, users map[string]models.User, listings map[string]models.Listing, unread map[models.ConversationKey]int) []models.ConversationSummary {
	summaries := make([]models.ConversationSummary, 0)
	seen := make(map[models.ConversationKey]bool)
	for _, m := range messages {
		other := m.FromUserID
		if other == userID {
			other = m.ToUserID
		}
		key := models.ConversationKey{OtherUserID: other, ListingID: m.ListingID}
		if seen[key] {
			continue
		}
		seen[key] = true

		summary := models.ConversationSummary{
			OtherUserID:     other,
			OtherUserName:   models.DeletedUserName,
			ListingID:       m.ListingID,
			ListingTitle:    models.DeletedListingTitle,
			LastMessage:     truncateContent(m.Content),
			LastMessageTime: m.CreatedAt,
			UnreadCount:     unread[key],
		}
		if u, ok := users[other]; ok {
			summary.OtherUserName = u.Name
			summary.OtherUserImage = u.ProfileImage
		}
		if l, ok := listings[m.ListingID]; ok {
			summary.ListingTitle = l.Title
			if len(l.Images) > 0 {
				image := l.Images[0]
				summary.ListingImage = &image
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func truncateContent(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength])
}

func (s *ConversationService) GetThread(ctx context.Context, userID, otherUserID, listingID string) ([]models.Message, error) {
	return s.Messages.ListThread(ctx, listingID, userID, otherUserID, threadLimit)
}

// MarkConversationRead marks every message the other user sent in this
// conversation as read. Repeated calls are harmless.
func (s *ConversationService) MarkConversationRead(ctx context.Context, userID, otherUserID, listingID string) error {
	return s.Messages.MarkRead(ctx, listingID, otherUserID, userID)
}

func (s *ConversationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.Messages.UnreadTotal(ctx, userID)
}
