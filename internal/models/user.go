package models

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"password,omitempty"`
	Role         string    `json:"role"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"review_count"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	PhoneEnabled bool      `json:"phone_enabled"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicProfile strips credentials and contact settings for the public user page.
func (u User) PublicProfile() User {
	return User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		Rating:       u.Rating,
		ReviewCount:  u.ReviewCount,
		ProfileImage: u.ProfileImage,
		IsVerified:   u.IsVerified,
		CreatedAt:    u.CreatedAt,
	}
}

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type Session struct {
	UserID       string    `json:"user_id"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpResponse struct {
	User   User   `json:"user"`
	Tokens Tokens `json:"tokens"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type PasswordReset struct {
	Email       string `json:"email"`
	ResetCode   string `json:"reset_code"`
	NewPassword string `json:"new_password"`
}

type ProfileUpdate struct {
	Name         *string `json:"name"`
	ProfileImage *string `json:"profile_image"`
	PhoneEnabled *bool   `json:"phone_enabled"`
}

type ctxKey string

// Context keys set by the JWT middleware.
const (
	CtxUserID ctxKey = "user_id"
	CtxRole   ctxKey = "role"
)
