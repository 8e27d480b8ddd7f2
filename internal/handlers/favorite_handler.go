package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"marketBack/internal/models"
	"marketBack/internal/services"
)

type FavoriteHandler struct {
	Service *services.FavoriteService
}

func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	listingID := r.URL.Query().Get(":listing_id")
	err := h.Service.Add(r.Context(), requestUserID(r), listingID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrListingNotFound):
			http.Error(w, "Listing not found", http.StatusNotFound)
		case errors.Is(err, models.ErrAlreadyFavorited):
			http.Error(w, "Listing already in favorites", http.StatusConflict)
		default:
			log.Printf("AddFavorite error: %v", err)
			http.Error(w, "Failed to add favorite", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "Added to favorites"})
}

func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	listingID := r.URL.Query().Get(":listing_id")
	err := h.Service.Remove(r.Context(), requestUserID(r), listingID)
	if err != nil {
		if errors.Is(err, models.ErrFavoriteNotFound) {
			http.Error(w, "Favorite not found", http.StatusNotFound)
			return
		}
		log.Printf("RemoveFavorite error: %v", err)
		http.Error(w, "Failed to remove favorite", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Removed from favorites"})
}

func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Service.List(r.Context(), requestUserID(r))
	if err != nil {
		log.Printf("GetFavorites error: %v", err)
		http.Error(w, "Failed to get favorites", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(listings)
}

func (h *FavoriteHandler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	listingID := r.URL.Query().Get(":listing_id")
	favorited, err := h.Service.Check(r.Context(), requestUserID(r), listingID)
	if err != nil {
		log.Printf("CheckFavorite error: %v", err)
		http.Error(w, "Failed to check favorite", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"is_favorite": favorited})
}
