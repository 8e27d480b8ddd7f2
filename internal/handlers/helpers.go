package handlers

import (
	"net/http"

	"marketBack/internal/models"
)

// requestUserID returns the authenticated user's ID set by the JWT
// middleware, or "" for anonymous requests.
func requestUserID(r *http.Request) string {
	id, _ := r.Context().Value(models.CtxUserID).(string)
	return id
}

func requestRole(r *http.Request) string {
	role, _ := r.Context().Value(models.CtxRole).(string)
	return role
}
