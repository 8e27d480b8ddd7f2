package services

import (
	"context"
	"testing"

	"marketBack/internal/models"
)

type stubRecommender struct {
	listings []models.Listing
}

func (s *stubRecommender) GetListingByID(ctx context.Context, id string) (models.Listing, error) {
	for _, l := range s.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Listing{}, models.ErrListingNotFound
}

func (s *stubRecommender) ListTopByViews(ctx context.Context, excludeIDs []string, excludeSeller string, limit int) ([]models.Listing, error) {
	var out []models.Listing
	for _, l := range s.listings {
		if contains(excludeIDs, l.ID) || l.SellerID == excludeSeller {
			continue
		}
		out = append(out, l)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *stubRecommender) ListByCategoriesNewest(ctx context.Context, categories, excludeIDs []string, excludeSeller string, limit int) ([]models.Listing, error) {
	var out []models.Listing
	for _, l := range s.listings {
		if !contains(categories, l.Category) || contains(excludeIDs, l.ID) || l.SellerID == excludeSeller {
			continue
		}
		out = append(out, l)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *stubRecommender) ListSimilarInBand(ctx context.Context, category string, minPrice, maxPrice float64, excludeID, excludeSeller string, limit int) ([]models.Listing, error) {
	var out []models.Listing
	for _, l := range s.listings {
		if l.Category != category || l.ID == excludeID || l.SellerID == excludeSeller {
			continue
		}
		if l.Price < minPrice || l.Price > maxPrice {
			continue
		}
		out = append(out, l)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *stubRecommender) ListSimilarBackfill(ctx context.Context, category string, excludeIDs []string, excludeSeller string, limit int) ([]models.Listing, error) {
	var out []models.Listing
	for _, l := range s.listings {
		if l.Category != category || contains(excludeIDs, l.ID) || l.SellerID == excludeSeller {
			continue
		}
		out = append(out, l)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type stubFavorites struct {
	ids        []string
	categories []string
}

func (s *stubFavorites) ListingIDs(ctx context.Context, userID string) ([]string, error) {
	return s.ids, nil
}

func (s *stubFavorites) Categories(ctx context.Context, userID string) ([]string, error) {
	return s.categories, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func TestSimilarStaysInPriceBand(t *testing.T) {
	// Source priced 100: the band is [70, 130].
	source := models.Listing{ID: "src", SellerID: "seller", Category: "electronics", Price: 100}
	svc := &RecommendationService{
		Listings: &stubRecommender{listings: []models.Listing{
			source,
			{ID: "a", SellerID: "x", Category: "electronics", Price: 75},
			{ID: "b", SellerID: "x", Category: "electronics", Price: 90},
			{ID: "c", SellerID: "x", Category: "electronics", Price: 120},
			{ID: "d", SellerID: "x", Category: "electronics", Price: 60},
			{ID: "e", SellerID: "x", Category: "electronics", Price: 200},
			{ID: "f", SellerID: "x", Category: "furniture", Price: 100},
		}},
	}

	similar, err := svc.Similar(context.Background(), "src")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := make(map[string]bool)
	for _, l := range similar {
		got[l.ID] = true
	}
	for _, want := range []string{"a", "b", "c"} {
		if !got[want] {
			t.Errorf("expected %s in similar results", want)
		}
	}
	if got["f"] {
		t.Error("cross-category listing must not appear")
	}
	if got["src"] {
		t.Error("source listing must not recommend itself")
	}
	// Band misses d and e but the category backfill picks them up.
	if len(similar) != 5 {
		t.Errorf("expected 5 results after backfill, got %d", len(similar))
	}
}

func TestSimilarUnknownListing(t *testing.T) {
	svc := &RecommendationService{Listings: &stubRecommender{}}
	_, err := svc.Similar(context.Background(), "missing")
	if err != models.ErrListingNotFound {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestForYouAnonymousUsesPopularity(t *testing.T) {
	listings := make([]models.Listing, 0, 12)
	for i := 0; i < 12; i++ {
		listings = append(listings, models.Listing{ID: string(rune('a' + i)), SellerID: "x", Category: "cars"})
	}
	svc := &RecommendationService{Listings: &stubRecommender{listings: listings}}

	feed, err := svc.ForYou(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feed) != 10 {
		t.Errorf("expected 10 listings, got %d", len(feed))
	}
}

func TestForYouFavoriteCategoriesFirst(t *testing.T) {
	svc := &RecommendationService{
		Listings: &stubRecommender{listings: []models.Listing{
			{ID: "fav", SellerID: "x", Category: "cars"},
			{ID: "cars1", SellerID: "x", Category: "cars"},
			{ID: "cars2", SellerID: "x", Category: "cars"},
			{ID: "other1", SellerID: "x", Category: "fashion"},
			{ID: "mine", SellerID: "u1", Category: "cars"},
		}},
		Favorites: &stubFavorites{ids: []string{"fav"}, categories: []string{"cars"}},
	}

	feed, err := svc.ForYou(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make(map[string]bool)
	for _, l := range feed {
		got[l.ID] = true
	}
	if !got["cars1"] || !got["cars2"] {
		t.Error("favorite-category listings missing from feed")
	}
	if got["fav"] {
		t.Error("already-favorited listing must be excluded")
	}
	if got["mine"] {
		t.Error("own listings must be excluded")
	}
	if !got["other1"] {
		t.Error("popularity backfill should fill remaining slots")
	}
	if feed[0].Category != "cars" {
		t.Errorf("favorite category should lead the feed, got %q", feed[0].Category)
	}
}

func TestForYouNoFavoritesFallsBackToPopular(t *testing.T) {
	svc := &RecommendationService{
		Listings: &stubRecommender{listings: []models.Listing{
			{ID: "a", SellerID: "x", Category: "cars"},
			{ID: "b", SellerID: "x", Category: "fashion"},
		}},
		Favorites: &stubFavorites{},
	}

	feed, err := svc.ForYou(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feed) != 2 {
		t.Errorf("expected 2 listings, got %d", len(feed))
	}
}
