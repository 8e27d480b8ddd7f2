package services

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"time"
	"unicode"

	"marketBack/internal/models"
	"marketBack/internal/repositories"
	"marketBack/utils"

	jwt "github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 60 * 24 * time.Hour
	resetCodeTTL    = 15 * time.Minute
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
	SigningKey   string
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.SignUpResponse, error) {
	if err := validatePassword(req.Password); err != nil {
		return models.SignUpResponse{}, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	user := models.User{
		ID:        utils.NewShortID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	tokens, err := s.issueTokens(ctx, created)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	created.Password = ""
	return models.SignUpResponse{User: created, Tokens: tokens}, nil
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignUpResponse, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.SignUpResponse{}, models.ErrInvalidCredentials
		}
		return models.SignUpResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.SignUpResponse{}, models.ErrInvalidCredentials
	}
	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	user.Password = ""
	return models.SignUpResponse{User: user, Tokens: tokens}, nil
}

func (s *UserService) issueTokens(ctx context.Context, user models.User) (models.Tokens, error) {
	claims := models.Claims{
		UserID: user.ID,
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(accessTokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.SigningKey))
	if err != nil {
		return models.Tokens{}, err
	}
	refresh, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.Tokens{}, err
	}
	session := models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().UTC().Add(refreshTokenTTL),
	}
	if err := s.UserRepo.CreateSession(ctx, session); err != nil {
		return models.Tokens{}, err
	}
	return models.Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

// RequestPasswordReset stores a short-lived reset code for the account. The
// response is the same whether or not the email exists.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	if _, err := s.UserRepo.GetUserByEmail(ctx, email); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil
		}
		return err
	}
	code, err := newResetCode()
	if err != nil {
		return err
	}
	if err := s.UserRepo.SaveResetCode(ctx, email, code, time.Now().UTC().Add(resetCodeTTL)); err != nil {
		return err
	}
	// Mail delivery is handled out of band.
	log.Printf("INFO\tpassword reset code for %s: %s", email, code)
	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, req models.PasswordReset) error {
	expiresAt, err := s.UserRepo.GetResetCodeExpiry(ctx, req.Email, req.ResetCode)
	if err != nil {
		return err
	}
	if time.Now().UTC().After(expiresAt) {
		_ = s.UserRepo.DeleteResetCodes(ctx, req.Email)
		return models.ErrInvalidResetCode
	}
	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.UserRepo.UpdatePassword(ctx, req.Email, string(hashed)); err != nil {
		return err
	}
	return s.UserRepo.DeleteResetCodes(ctx, req.Email)
}

func (s *UserService) Profile(ctx context.Context, userID string) (models.User, error) {
	user, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error) {
	if err := s.UserRepo.UpdateProfile(ctx, userID, update); err != nil {
		return models.User{}, err
	}
	return s.Profile(ctx, userID)
}

// PublicUser returns the profile fields visible to any caller.
func (s *UserService) PublicUser(ctx context.Context, userID string) (models.User, error) {
	user, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	return user.PublicProfile(), nil
}

// newResetCode draws a six-digit code from crypto/rand. The code gates a
// password change, so it must not come from a guessable source.
func newResetCode() (string, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", binary.BigEndian.Uint32(b[:])%1000000), nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return models.ErrWeakPassword
	}
	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasDigit {
		return models.ErrWeakPassword
	}
	return nil
}
