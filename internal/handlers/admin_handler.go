package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"marketBack/internal/models"
	"marketBack/internal/services"
)

type AdminHandler struct {
	Service *services.AdminService
}

func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers(r.Context())
	if err != nil {
		log.Printf("GetUsers error: %v", err)
		http.Error(w, "Failed to get users", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(users)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":id")
	err := h.Service.DeleteUser(r.Context(), userID, requestRole(r))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			http.Error(w, "User not found", http.StatusNotFound)
		case errors.Is(err, models.ErrForbidden):
			http.Error(w, "Not allowed to delete this user", http.StatusForbidden)
		default:
			log.Printf("DeleteUser error: %v", err)
			http.Error(w, "Failed to delete user", http.StatusInternalServerError)
		}
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "User deleted"})
}

func (h *AdminHandler) PromoteUser(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":id")
	if err := h.Service.PromoteUser(r.Context(), userID); err != nil {
		h.writeRoleError(w, "PromoteUser", err)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "User promoted to admin"})
}

func (h *AdminHandler) DemoteUser(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":id")
	if err := h.Service.DemoteUser(r.Context(), userID); err != nil {
		h.writeRoleError(w, "DemoteUser", err)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "User demoted"})
}

func (h *AdminHandler) writeRoleError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		http.Error(w, "User not found", http.StatusNotFound)
	case errors.Is(err, models.ErrForbidden):
		http.Error(w, "Cannot change this user's role", http.StatusForbidden)
	default:
		log.Printf("%s error: %v", op, err)
		http.Error(w, "Failed to change role", http.StatusInternalServerError)
	}
}

func (h *AdminHandler) VerifyUser(w http.ResponseWriter, r *http.Request) {
	h.setVerified(w, r, true)
}

func (h *AdminHandler) UnverifyUser(w http.ResponseWriter, r *http.Request) {
	h.setVerified(w, r, false)
}

func (h *AdminHandler) setVerified(w http.ResponseWriter, r *http.Request, verified bool) {
	userID := r.URL.Query().Get(":id")
	if err := h.Service.SetVerified(r.Context(), userID, verified); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Printf("SetVerified error: %v", err)
		http.Error(w, "Failed to update verification", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"is_verified": verified})
}

func (h *AdminHandler) GetListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Service.ListListings(r.Context())
	if err != nil {
		log.Printf("GetListings error: %v", err)
		http.Error(w, "Failed to get listings", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(listings)
}

func (h *AdminHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	listingID := r.URL.Query().Get(":id")
	if err := h.Service.DeleteListing(r.Context(), listingID); err != nil {
		if errors.Is(err, models.ErrListingNotFound) {
			http.Error(w, "Listing not found", http.StatusNotFound)
			return
		}
		log.Printf("DeleteListing error: %v", err)
		http.Error(w, "Failed to delete listing", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Listing deleted"})
}

func (h *AdminHandler) PinListing(w http.ResponseWriter, r *http.Request) {
	h.setPinned(w, r, true)
}

func (h *AdminHandler) UnpinListing(w http.ResponseWriter, r *http.Request) {
	h.setPinned(w, r, false)
}

func (h *AdminHandler) setPinned(w http.ResponseWriter, r *http.Request, pinned bool) {
	listingID := r.URL.Query().Get(":id")
	if err := h.Service.SetPinned(r.Context(), listingID, pinned); err != nil {
		if errors.Is(err, models.ErrListingNotFound) {
			http.Error(w, "Listing not found", http.StatusNotFound)
			return
		}
		log.Printf("SetPinned error: %v", err)
		http.Error(w, "Failed to update pin", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"is_pinned": pinned})
}

func (h *AdminHandler) GetRecentMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Service.RecentMessages(r.Context())
	if err != nil {
		log.Printf("GetRecentMessages error: %v", err)
		http.Error(w, "Failed to get messages", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(messages)
}

func (h *AdminHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.Service.ListTickets(r.Context())
	if err != nil {
		log.Printf("GetTickets error: %v", err)
		http.Error(w, "Failed to get tickets", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(tickets)
}

func (h *AdminHandler) ReplyToTicket(w http.ResponseWriter, r *http.Request) {
	ticketID := r.URL.Query().Get(":id")
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}
	if err := h.Service.ReplyToTicket(r.Context(), ticketID, req.Message); err != nil {
		if errors.Is(err, models.ErrTicketNotFound) {
			http.Error(w, "Ticket not found", http.StatusNotFound)
			return
		}
		log.Printf("ReplyToTicket error: %v", err)
		http.Error(w, "Failed to reply to ticket", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Reply added"})
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		log.Printf("GetStats error: %v", err)
		http.Error(w, "Failed to get stats", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(stats)
}
