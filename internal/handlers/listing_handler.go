package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"marketBack/internal/models"
	"marketBack/internal/services"
)

const maxUploadBytes = 20 << 20

type ListingHandler struct {
	Service *services.ListingService
}

func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var req models.ListingCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Category == "" {
		http.Error(w, "Title and category are required", http.StatusBadRequest)
		return
	}
	listing, err := h.Service.CreateListing(r.Context(), requestUserID(r), req)
	if err != nil {
		log.Printf("CreateListing error: %v", err)
		http.Error(w, "Failed to create listing", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(listing)
}

func (h *ListingHandler) GetListings(w http.ResponseWriter, r *http.Request) {
	filter := models.ListingFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}
	filter.Skip, _ = strconv.Atoi(r.URL.Query().Get("skip"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	listings, err := h.Service.GetListings(r.Context(), filter)
	if err != nil {
		log.Printf("GetListings error: %v", err)
		http.Error(w, "Failed to get listings", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(listings)
}

func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	listingID := r.URL.Query().Get(":id")
	listing, err := h.Service.GetListing(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, models.ErrListingNotFound) {
			http.Error(w, "Listing not found", http.StatusNotFound)
			return
		}
		log.Printf("GetListing error: %v", err)
		http.Error(w, "Failed to get listing", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(listing)
}

func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	listingID := r.URL.Query().Get(":id")
	var req models.ListingCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	listing, err := h.Service.UpdateListing(r.Context(), listingID, requestUserID(r), requestRole(r), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrListingNotFound):
			http.Error(w, "Listing not found", http.StatusNotFound)
		case errors.Is(err, models.ErrForbidden):
			http.Error(w, "Not allowed", http.StatusForbidden)
		default:
			log.Printf("UpdateListing error: %v", err)
			http.Error(w, "Failed to update listing", http.StatusInternalServerError)
		}
		return
	}
	json.NewEncoder(w).Encode(listing)
}

func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	listingID := r.URL.Query().Get(":id")
	err := h.Service.DeleteListing(r.Context(), listingID, requestUserID(r), requestRole(r))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrListingNotFound):
			http.Error(w, "Listing not found", http.StatusNotFound)
		case errors.Is(err, models.ErrForbidden):
			http.Error(w, "Not allowed", http.StatusForbidden)
		default:
			log.Printf("DeleteListing error: %v", err)
			http.Error(w, "Failed to delete listing", http.StatusInternalServerError)
		}
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Listing deleted"})
}

func (h *ListingHandler) GetMyListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Service.GetListingsBySeller(r.Context(), requestUserID(r))
	if err != nil {
		log.Printf("GetMyListings error: %v", err)
		http.Error(w, "Failed to get listings", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(listings)
}

func (h *ListingHandler) GetSellerListings(w http.ResponseWriter, r *http.Request) {
	sellerID := r.URL.Query().Get(":id")
	if sellerID == "" {
		http.Error(w, "Missing seller ID", http.StatusBadRequest)
		return
	}
	listings, err := h.Service.GetListingsBySeller(r.Context(), sellerID)
	if err != nil {
		log.Printf("GetSellerListings error: %v", err)
		http.Error(w, "Failed to get listings", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(listings)
}

// UploadMedia accepts one multipart file under the "file" field and attaches
// it to the listing.
func (h *ListingHandler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	listingID := r.URL.Query().Get(":id")
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusBadRequest)
		return
	}
	contentType := header.Header.Get("Content-Type")

	listing, err := h.Service.AttachMedia(r.Context(), listingID, requestUserID(r), requestRole(r), data, contentType)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrListingNotFound):
			http.Error(w, "Listing not found", http.StatusNotFound)
		case errors.Is(err, models.ErrForbidden):
			http.Error(w, "Not allowed", http.StatusForbidden)
		default:
			log.Printf("UploadMedia error: %v", err)
			http.Error(w, "Failed to upload media", http.StatusInternalServerError)
		}
		return
	}
	json.NewEncoder(w).Encode(listing)
}
