package models

import (
	"errors"
)

var (
	ErrUserNotFound     = errors.New("models: user not found")
	ErrListingNotFound  = errors.New("models: listing not found")
	ErrOfferNotFound    = errors.New("models: offer not found")
	ErrTicketNotFound   = errors.New("models: support ticket not found")
	ErrFavoriteNotFound = errors.New("models: favorite not found")

	ErrDuplicateEmail   = errors.New("models: duplicate email")
	ErrAlreadyReviewed  = errors.New("models: user already reviewed")
	ErrSelfReview       = errors.New("models: cannot review own profile")
	ErrAlreadyFavorited = errors.New("models: listing already in favorites")
	ErrOfferResolved    = errors.New("models: offer already resolved")

	ErrInvalidOfferAction = errors.New("models: offer action must be accept or reject")
	ErrInvalidRating      = errors.New("models: rating must be between 1 and 5")

	ErrForbidden          = errors.New("models: forbidden")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrInvalidResetCode   = errors.New("models: invalid or expired reset code")
	ErrWeakPassword       = errors.New("models: password must have at least 8 characters, one uppercase letter and one digit")
)
