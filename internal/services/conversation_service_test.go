package services

import (
	"context"
	"testing"
	"time"

	"marketBack/internal/models"
)

type stubMessages struct {
	messages []models.Message
	unread   map[models.ConversationKey]int
	marked   []string
	created  []models.Message
}

func (s *stubMessages) CreateMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	s.created = append(s.created, msg)
	return msg, nil
}

func (s *stubMessages) ListForUser(ctx context.Context, userID string, limit int) ([]models.Message, error) {
	return s.messages, nil
}

func (s *stubMessages) ListThread(ctx context.Context, listingID, userID, otherUserID string, limit int) ([]models.Message, error) {
	return s.messages, nil
}

func (s *stubMessages) UnreadTotal(ctx context.Context, userID string) (int, error) {
	total := 0
	for _, n := range s.unread {
		total += n
	}
	return total, nil
}

func (s *stubMessages) UnreadByConversation(ctx context.Context, userID string) (map[models.ConversationKey]int, error) {
	return s.unread, nil
}

func (s *stubMessages) MarkRead(ctx context.Context, listingID, fromUserID, toUserID string) error {
	s.marked = append(s.marked, listingID+"/"+fromUserID)
	return nil
}

type stubUsers struct {
	users []models.User
}

func (s *stubUsers) ListByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	var out []models.User
	for _, u := range s.users {
		for _, id := range ids {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

type stubListings struct {
	listings []models.Listing
}

func (s *stubListings) GetListingByID(ctx context.Context, id string) (models.Listing, error) {
	for _, l := range s.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Listing{}, models.ErrListingNotFound
}

func (s *stubListings) ListByIDs(ctx context.Context, ids []string) ([]models.Listing, error) {
	var out []models.Listing
	for _, l := range s.listings {
		for _, id := range ids {
			if l.ID == id {
				out = append(out, l)
			}
		}
	}
	return out, nil
}

func msgAt(from, to, listing, content string, minutesAgo int) models.Message {
	return models.Message{
		ID:          content,
		FromUserID:  from,
		ToUserID:    to,
		ListingID:   listing,
		Content:     content,
		MessageType: models.MessageTypeText,
		CreatedAt:   time.Now().Add(-time.Duration(minutesAgo) * time.Minute),
	}
}

func TestListConversationsGroupsNewestFirst(t *testing.T) {
	// Newest first, as the repository returns them.
	messages := []models.Message{
		msgAt("u2", "u1", "l1", "latest from u2", 1),
		msgAt("u1", "u3", "l2", "latest to u3", 5),
		msgAt("u1", "u2", "l1", "older to u2", 10),
		msgAt("u3", "u1", "l2", "oldest from u3", 20),
	}
	svc := &ConversationService{
		Messages: &stubMessages{messages: messages, unread: map[models.ConversationKey]int{
			{OtherUserID: "u2", ListingID: "l1"}: 3,
		}},
		Users: &stubUsers{users: []models.User{
			{ID: "u2", Name: "Bela"},
			{ID: "u3", Name: "Chris"},
		}},
		Listings: &stubListings{listings: []models.Listing{
			{ID: "l1", Title: "Bike", Images: []string{"bike.jpg"}},
			{ID: "l2", Title: "Sofa"},
		}},
	}

	conversations, err := svc.ListConversations(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conversations) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(conversations))
	}

	first := conversations[0]
	if first.OtherUserID != "u2" || first.ListingID != "l1" {
		t.Errorf("wrong first conversation: %+v", first)
	}
	if first.LastMessage != "latest from u2" {
		t.Errorf("first-seen message should win: %q", first.LastMessage)
	}
	if first.OtherUserName != "Bela" {
		t.Errorf("other user name mismatch: %q", first.OtherUserName)
	}
	if first.UnreadCount != 3 {
		t.Errorf("unread count mismatch: %d", first.UnreadCount)
	}
	if first.ListingImage == nil || *first.ListingImage != "bike.jpg" {
		t.Errorf("listing image mismatch: %v", first.ListingImage)
	}

	second := conversations[1]
	if second.OtherUserID != "u3" || second.ListingID != "l2" {
		t.Errorf("wrong second conversation: %+v", second)
	}
	if second.UnreadCount != 0 {
		t.Errorf("expected zero unread, got %d", second.UnreadCount)
	}
}

func TestListConversationsSeparatesListings(t *testing.T) {
	// Same counterparty, two listings: two conversations.
	messages := []models.Message{
		msgAt("u2", "u1", "l1", "about the bike", 1),
		msgAt("u2", "u1", "l2", "about the sofa", 2),
	}
	svc := &ConversationService{
		Messages: &stubMessages{messages: messages, unread: map[models.ConversationKey]int{}},
		Users:    &stubUsers{users: []models.User{{ID: "u2", Name: "Bela"}}},
		Listings: &stubListings{listings: []models.Listing{{ID: "l1", Title: "Bike"}, {ID: "l2", Title: "Sofa"}}},
	}

	conversations, err := svc.ListConversations(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conversations) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(conversations))
	}
}

func TestListConversationsTombstones(t *testing.T) {
	messages := []models.Message{
		msgAt("gone", "u1", "missing", "hello?", 1),
	}
	svc := &ConversationService{
		Messages: &stubMessages{messages: messages, unread: map[models.ConversationKey]int{}},
		Users:    &stubUsers{},
		Listings: &stubListings{},
	}

	conversations, err := svc.ListConversations(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conversations) != 1 {
		t.Fatalf("expected 1 conversation, got %d", len(conversations))
	}
	if conversations[0].OtherUserName != models.DeletedUserName {
		t.Errorf("expected deleted user placeholder, got %q", conversations[0].OtherUserName)
	}
	if conversations[0].ListingTitle != models.DeletedListingTitle {
		t.Errorf("expected deleted listing placeholder, got %q", conversations[0].ListingTitle)
	}
}

func TestTruncateContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short stays intact", "hello", "hello"},
		{"exactly fifty", "01234567890123456789012345678901234567890123456789", "01234567890123456789012345678901234567890123456789"},
		{"long is cut", "0123456789012345678901234567890123456789012345678901234", "01234567890123456789012345678901234567890123456789"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateContent(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncateContentMultibyte(t *testing.T) {
	in := ""
	for i := 0; i < 60; i++ {
		in += "ä"
	}
	got := truncateContent(in)
	if len([]rune(got)) != 50 {
		t.Errorf("expected 50 runes, got %d", len([]rune(got)))
	}
}

func TestSendMessageRequiresListing(t *testing.T) {
	svc := &ConversationService{
		Messages: &stubMessages{},
		Users:    &stubUsers{},
		Listings: &stubListings{},
	}
	_, err := svc.SendMessage(context.Background(), "u1", models.MessageCreate{
		ToUserID:  "u2",
		ListingID: "missing",
		Content:   "hi",
	})
	if err != models.ErrListingNotFound {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestSendMessageDefaultsType(t *testing.T) {
	messages := &stubMessages{}
	svc := &ConversationService{
		Messages: messages,
		Users:    &stubUsers{},
		Listings: &stubListings{listings: []models.Listing{{ID: "l1"}}},
	}
	msg, err := svc.SendMessage(context.Background(), "u1", models.MessageCreate{
		ToUserID:  "u2",
		ListingID: "l1",
		Content:   "hi",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.MessageType != models.MessageTypeText {
		t.Errorf("expected text type, got %q", msg.MessageType)
	}
	if msg.ID == "" {
		t.Error("expected generated message ID")
	}
	if len(messages.created) != 1 {
		t.Errorf("expected 1 stored message, got %d", len(messages.created))
	}
}
