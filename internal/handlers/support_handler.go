package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"marketBack/internal/models"
	"marketBack/internal/services"
)

type SupportHandler struct {
	Service *services.SupportService
}

func (h *SupportHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req models.SupportTicketCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Subject == "" || req.Message == "" {
		http.Error(w, "Subject and message are required", http.StatusBadRequest)
		return
	}
	ticket, err := h.Service.CreateTicket(r.Context(), requestUserID(r), req)
	if err != nil {
		log.Printf("CreateTicket error: %v", err)
		http.Error(w, "Failed to create ticket", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ticket)
}

func (h *SupportHandler) GetMyTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.Service.MyTickets(r.Context(), requestUserID(r))
	if err != nil {
		log.Printf("GetMyTickets error: %v", err)
		http.Error(w, "Failed to get tickets", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(tickets)
}
