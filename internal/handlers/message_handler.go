package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"marketBack/internal/models"
	"marketBack/internal/services"
)

type MessageHandler struct {
	Service *services.ConversationService
}

func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.MessageCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.ToUserID == "" || req.ListingID == "" || req.Content == "" {
		http.Error(w, "to_user_id, listing_id and content are required", http.StatusBadRequest)
		return
	}
	message, err := h.Service.SendMessage(r.Context(), requestUserID(r), req)
	if err != nil {
		if errors.Is(err, models.ErrListingNotFound) {
			http.Error(w, "Listing not found", http.StatusNotFound)
			return
		}
		log.Printf("SendMessage error: %v", err)
		http.Error(w, "Failed to send message", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(message)
}

func (h *MessageHandler) GetConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := h.Service.ListConversations(r.Context(), requestUserID(r))
	if err != nil {
		log.Printf("GetConversations error: %v", err)
		http.Error(w, "Failed to get conversations", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(conversations)
}

func (h *MessageHandler) GetThread(w http.ResponseWriter, r *http.Request) {
	otherUserID := r.URL.Query().Get(":user_id")
	listingID := r.URL.Query().Get(":listing_id")
	if otherUserID == "" || listingID == "" {
		http.Error(w, "Missing user or listing ID", http.StatusBadRequest)
		return
	}
	messages, err := h.Service.GetThread(r.Context(), requestUserID(r), otherUserID, listingID)
	if err != nil {
		log.Printf("GetThread error: %v", err)
		http.Error(w, "Failed to get messages", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(messages)
}

func (h *MessageHandler) MarkConversationRead(w http.ResponseWriter, r *http.Request) {
	otherUserID := r.URL.Query().Get(":user_id")
	listingID := r.URL.Query().Get(":listing_id")
	if otherUserID == "" || listingID == "" {
		http.Error(w, "Missing user or listing ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.MarkConversationRead(r.Context(), requestUserID(r), otherUserID, listingID); err != nil {
		log.Printf("MarkConversationRead error: %v", err)
		http.Error(w, "Failed to mark conversation read", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Conversation marked as read"})
}

func (h *MessageHandler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.Service.UnreadCount(r.Context(), requestUserID(r))
	if err != nil {
		log.Printf("GetUnreadCount error: %v", err)
		http.Error(w, "Failed to get unread count", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]int{"unread_count": count})
}
