package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"marketBack/internal/models"
	"marketBack/internal/services"
)

type ReviewHandler struct {
	Service *services.ReviewService
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req models.ReviewCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	review, err := h.Service.SubmitReview(r.Context(), requestUserID(r), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSelfReview):
			http.Error(w, "Cannot review your own profile", http.StatusBadRequest)
		case errors.Is(err, models.ErrInvalidRating):
			http.Error(w, "Rating must be between 1 and 5", http.StatusBadRequest)
		case errors.Is(err, models.ErrUserNotFound):
			http.Error(w, "User not found", http.StatusNotFound)
		case errors.Is(err, models.ErrAlreadyReviewed):
			http.Error(w, "You already reviewed this user", http.StatusConflict)
		default:
			log.Printf("CreateReview error: %v", err)
			http.Error(w, "Failed to create review", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(review)
}

func (h *ReviewHandler) GetUserReviews(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":id")
	if userID == "" {
		http.Error(w, "Missing user ID", http.StatusBadRequest)
		return
	}
	reviews, err := h.Service.ListForUser(r.Context(), userID)
	if err != nil {
		log.Printf("GetUserReviews error: %v", err)
		http.Error(w, "Failed to get reviews", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(reviews)
}
