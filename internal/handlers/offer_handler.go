package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"marketBack/internal/models"
	"marketBack/internal/services"
)

type OfferHandler struct {
	Service *services.OfferService
}

func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req models.OfferCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.ListingID == "" || req.OfferedPrice <= 0 {
		http.Error(w, "listing_id and a positive offered_price are required", http.StatusBadRequest)
		return
	}
	offer, err := h.Service.CreateOffer(r.Context(), requestUserID(r), req)
	if err != nil {
		if errors.Is(err, models.ErrListingNotFound) {
			http.Error(w, "Listing not found", http.StatusNotFound)
			return
		}
		log.Printf("CreateOffer error: %v", err)
		http.Error(w, "Failed to create offer", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(offer)
}

func (h *OfferHandler) ResolveOffer(w http.ResponseWriter, r *http.Request) {
	var req models.OfferAction
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	req.OfferID = r.URL.Query().Get(":id")
	offer, err := h.Service.ResolveOffer(r.Context(), requestUserID(r), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidOfferAction):
			http.Error(w, "Action must be accept or reject", http.StatusBadRequest)
		case errors.Is(err, models.ErrOfferNotFound):
			http.Error(w, "Offer not found", http.StatusNotFound)
		case errors.Is(err, models.ErrForbidden):
			http.Error(w, "Only the seller can resolve an offer", http.StatusForbidden)
		case errors.Is(err, models.ErrOfferResolved):
			http.Error(w, "Offer already resolved", http.StatusConflict)
		default:
			log.Printf("ResolveOffer error: %v", err)
			http.Error(w, "Failed to resolve offer", http.StatusInternalServerError)
		}
		return
	}
	json.NewEncoder(w).Encode(offer)
}

func (h *OfferHandler) GetReceivedOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Service.ListReceived(r.Context(), requestUserID(r))
	if err != nil {
		log.Printf("GetReceivedOffers error: %v", err)
		http.Error(w, "Failed to get offers", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(offers)
}

func (h *OfferHandler) GetSentOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Service.ListSent(r.Context(), requestUserID(r))
	if err != nil {
		log.Printf("GetSentOffers error: %v", err)
		http.Error(w, "Failed to get offers", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(offers)
}
