package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"marketBack/internal/models"
	"marketBack/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" {
		http.Error(w, "Name and email are required", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.SignUp(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrWeakPassword):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, models.ErrDuplicateEmail):
			http.Error(w, "Email already registered", http.StatusConflict)
		default:
			log.Printf("SignUp error: %v", err)
			http.Error(w, "Failed to sign up", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.SignIn(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			http.Error(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		log.Printf("SignIn error: %v", err)
		http.Error(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(resp)
}

func (h *UserHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		log.Printf("RequestPasswordReset error: %v", err)
		http.Error(w, "Failed to request password reset", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "If the email exists, a reset code has been sent"})
}

func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordReset
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.ResetPassword(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidResetCode):
			http.Error(w, "Invalid or expired reset code", http.StatusBadRequest)
		case errors.Is(err, models.ErrWeakPassword):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("ResetPassword error: %v", err)
			http.Error(w, "Failed to reset password", http.StatusInternalServerError)
		}
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Password updated"})
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.Profile(r.Context(), requestUserID(r))
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Printf("GetProfile error: %v", err)
		http.Error(w, "Failed to get profile", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	user, err := h.Service.UpdateProfile(r.Context(), requestUserID(r), update)
	if err != nil {
		log.Printf("UpdateProfile error: %v", err)
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) GetPublicUser(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":id")
	if userID == "" {
		http.Error(w, "Missing user ID", http.StatusBadRequest)
		return
	}
	user, err := h.Service.PublicUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Printf("GetPublicUser error: %v", err)
		http.Error(w, "Failed to get user", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(user)
}
