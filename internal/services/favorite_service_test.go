package services

import (
	"context"
	"testing"

	"marketBack/internal/models"
)

type stubFavoriteStore struct {
	ids []string
}

func (s *stubFavoriteStore) AddFavorite(ctx context.Context, fav models.Favorite) error {
	for _, id := range s.ids {
		if id == fav.ListingID {
			return models.ErrAlreadyFavorited
		}
	}
	s.ids = append([]string{fav.ListingID}, s.ids...)
	return nil
}

func (s *stubFavoriteStore) RemoveFavorite(ctx context.Context, userID, listingID string) error {
	for i, id := range s.ids {
		if id == listingID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return nil
		}
	}
	return models.ErrFavoriteNotFound
}

func (s *stubFavoriteStore) IsFavorite(ctx context.Context, userID, listingID string) (bool, error) {
	for _, id := range s.ids {
		if id == listingID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubFavoriteStore) ListingIDs(ctx context.Context, userID string) ([]string, error) {
	return s.ids, nil
}

func TestAddFavoriteRequiresListing(t *testing.T) {
	svc := &FavoriteService{Favorites: &stubFavoriteStore{}, Listings: &stubListings{}}
	err := svc.Add(context.Background(), "u1", "missing")
	if err != models.ErrListingNotFound {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestAddFavoriteOnlyOnce(t *testing.T) {
	svc := &FavoriteService{
		Favorites: &stubFavoriteStore{},
		Listings:  &stubListings{listings: []models.Listing{{ID: "l1"}}},
	}
	if err := svc.Add(context.Background(), "u1", "l1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Add(context.Background(), "u1", "l1"); err != models.ErrAlreadyFavorited {
		t.Fatalf("expected ErrAlreadyFavorited, got %v", err)
	}
}

func TestListFavoritesSkipsDeletedListings(t *testing.T) {
	svc := &FavoriteService{
		Favorites: &stubFavoriteStore{ids: []string{"l2", "gone", "l1"}},
		Listings:  &stubListings{listings: []models.Listing{{ID: "l1"}, {ID: "l2"}}},
	}
	listings, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	// Order follows the favorites, newest first.
	if listings[0].ID != "l2" || listings[1].ID != "l1" {
		t.Errorf("order mismatch: %s, %s", listings[0].ID, listings[1].ID)
	}
}

func TestRemoveFavoriteMissing(t *testing.T) {
	svc := &FavoriteService{Favorites: &stubFavoriteStore{}, Listings: &stubListings{}}
	err := svc.Remove(context.Background(), "u1", "l1")
	if err != models.ErrFavoriteNotFound {
		t.Fatalf("expected ErrFavoriteNotFound, got %v", err)
	}
}
