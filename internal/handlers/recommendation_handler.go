package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"marketBack/internal/models"
	"marketBack/internal/services"
)

type RecommendationHandler struct {
	Service *services.RecommendationService
}

// GetForYou serves the feed for both anonymous and signed-in callers; the
// optional auth middleware decides which.
func (h *RecommendationHandler) GetForYou(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Service.ForYou(r.Context(), requestUserID(r))
	if err != nil {
		log.Printf("GetForYou error: %v", err)
		http.Error(w, "Failed to get recommendations", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(listings)
}

func (h *RecommendationHandler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	listingID := r.URL.Query().Get(":id")
	listings, err := h.Service.Similar(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, models.ErrListingNotFound) {
			http.Error(w, "Listing not found", http.StatusNotFound)
			return
		}
		log.Printf("GetSimilar error: %v", err)
		http.Error(w, "Failed to get similar listings", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(listings)
}
