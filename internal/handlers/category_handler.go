package handlers

import (
	"encoding/json"
	"net/http"

	"marketBack/internal/models"
)

type CategoryHandler struct{}

// GetCategories returns the static category catalog with its per-category
// extra fields.
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(models.Categories)
}
