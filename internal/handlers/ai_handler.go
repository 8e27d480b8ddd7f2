package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"marketBack/internal/models"
	"marketBack/internal/services"
)

type AIHandler struct {
	Service *services.AIService
}

func (h *AIHandler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	var req models.AIDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}
	result, err := h.Service.GenerateDescription(r.Context(), req)
	if err != nil {
		log.Printf("GenerateDescription error: %v", err)
		http.Error(w, "Failed to generate description", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(models.AIResponse{Result: result})
}

func (h *AIHandler) SuggestPrice(w http.ResponseWriter, r *http.Request) {
	var req models.AIPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}
	result, err := h.Service.SuggestPrice(r.Context(), req)
	if err != nil {
		log.Printf("SuggestPrice error: %v", err)
		http.Error(w, "Failed to suggest price", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(models.AIResponse{Result: result})
}
