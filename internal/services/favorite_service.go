package services

import (
	"context"
	"time"

	"marketBack/internal/models"

	"github.com/google/uuid"
)

// FavoriteStore is the slice of the favorites repository the service
// depends on.
type FavoriteStore interface {
	AddFavorite(ctx context.Context, fav models.Favorite) error
	RemoveFavorite(ctx context.Context, userID, listingID string) error
	IsFavorite(ctx context.Context, userID, listingID string) (bool, error)
	ListingIDs(ctx context.Context, userID string) ([]string, error)
}

type FavoriteService struct {
	Favorites       FavoriteStore
	Listings        ListingDirectory
	Recommendations *RecommendationService
}

func (s *FavoriteService) Add(ctx context.Context, userID, listingID string) error {
	if _, err := s.Listings.GetListingByID(ctx, listingID); err != nil {
		return err
	}
	fav := models.Favorite{
		ID:        uuid.New().String(),
		UserID:    userID,
		ListingID: listingID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Favorites.AddFavorite(ctx, fav); err != nil {
		return err
	}
	s.invalidateFeed(ctx, userID)
	return nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID, listingID string) error {
	if err := s.Favorites.RemoveFavorite(ctx, userID, listingID); err != nil {
		return err
	}
	s.invalidateFeed(ctx, userID)
	return nil
}

func (s *FavoriteService) Check(ctx context.Context, userID, listingID string) (bool, error) {
	return s.Favorites.IsFavorite(ctx, userID, listingID)
}

// List returns the user's favorited listings, newest favorite first.
// Listings deleted since being favorited are skipped.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]models.Listing, error) {
	ids, err := s.Favorites.ListingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	listings, err := s.Listings.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Listing, len(listings))
	for _, l := range listings {
		byID[l.ID] = l
	}
	ordered := make([]models.Listing, 0, len(ids))
	for _, id := range ids {
		if l, ok := byID[id]; ok {
			ordered = append(ordered, l)
		}
	}
	return ordered, nil
}

func (s *FavoriteService) invalidateFeed(ctx context.Context, userID string) {
	if s.Recommendations != nil {
		s.Recommendations.InvalidateForYou(ctx, userID)
	}
}
