package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketBack/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	forYouLimit    = 10
	similarLimit   = 6
	priceBandRatio = 0.3
	forYouCacheTTL = time.Minute
)

// ListingRecommender is the slice of the listing repository the
// recommendation engine depends on.
type ListingRecommender interface {
	GetListingByID(ctx context.Context, id string) (models.Listing, error)
	ListTopByViews(ctx context.Context, excludeIDs []string, excludeSeller string, limit int) ([]models.Listing, error)
	ListByCategoriesNewest(ctx context.Context, categories, excludeIDs []string, excludeSeller string, limit int) ([]models.Listing, error)
	ListSimilarInBand(ctx context.Context, category string, minPrice, maxPrice float64, excludeID, excludeSeller string, limit int) ([]models.Listing, error)
	ListSimilarBackfill(ctx context.Context, category string, excludeIDs []string, excludeSeller string, limit int) ([]models.Listing, error)
}

// FavoriteReader exposes the parts of the favorites repository the
// recommendation engine reads taste signals from.
type FavoriteReader interface {
	ListingIDs(ctx context.Context, userID string) ([]string, error)
	Categories(ctx context.Context, userID string) ([]string, error)
}

// RecommendationService builds the personalized feed and the similar
// listings strip. Cache is optional; a nil client disables caching.
type RecommendationService struct {
	Listings  ListingRecommender
	Favorites FavoriteReader
	Cache     *redis.Client
}

func forYouCacheKey(userID string) string {
	return fmt.Sprintf("foryou:%s", userID)
}

// ForYou returns up to ten listings for the feed. Anonymous callers get the
// most viewed listings; signed-in users get fresh listings from their
// favorite categories, backfilled by popularity.
func (s *RecommendationService) ForYou(ctx context.Context, userID string) ([]models.Listing, error) {
	if userID == "" {
		return s.Listings.ListTopByViews(ctx, nil, "", forYouLimit)
	}

	if cached, ok := s.cachedForYou(ctx, userID); ok {
		return cached, nil
	}

	favoriteIDs, err := s.Favorites.ListingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	categories, err := s.Favorites.Categories(ctx, userID)
	if err != nil {
		return nil, err
	}

	feed := make([]models.Listing, 0, forYouLimit)
	if len(categories) > 0 {
		feed, err = s.Listings.ListByCategoriesNewest(ctx, categories, favoriteIDs, userID, forYouLimit)
		if err != nil {
			return nil, err
		}
	}
	if len(feed) < forYouLimit {
		exclude := append(listingIDs(feed), favoriteIDs...)
		popular, err := s.Listings.ListTopByViews(ctx, exclude, userID, forYouLimit-len(feed))
		if err != nil {
			return nil, err
		}
		feed = append(feed, popular...)
	}

	s.storeForYou(ctx, userID, feed)
	return feed, nil
}

// Similar returns up to six listings in the same category whose price falls
// within thirty percent of the source listing's, backfilled from the rest of
// the category.
func (s *RecommendationService) Similar(ctx context.Context, listingID string) ([]models.Listing, error) {
	source, err := s.Listings.GetListingByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	minPrice := source.Price * (1 - priceBandRatio)
	maxPrice := source.Price * (1 + priceBandRatio)

	similar, err := s.Listings.ListSimilarInBand(ctx, source.Category, minPrice, maxPrice, source.ID, source.SellerID, similarLimit)
	if err != nil {
		return nil, err
	}
	if len(similar) < similarLimit {
		exclude := append(listingIDs(similar), source.ID)
		backfill, err := s.Listings.ListSimilarBackfill(ctx, source.Category, exclude, source.SellerID, similarLimit-len(similar))
		if err != nil {
			return nil, err
		}
		similar = append(similar, backfill...)
	}
	return similar, nil
}

// InvalidateForYou drops the cached feed after the user's favorites change.
func (s *RecommendationService) InvalidateForYou(ctx context.Context, userID string) {
	if s.Cache == nil {
		return
	}
	s.Cache.Del(ctx, forYouCacheKey(userID))
}

func (s *RecommendationService) cachedForYou(ctx context.Context, userID string) ([]models.Listing, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, forYouCacheKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var feed []models.Listing
	if err := json.Unmarshal(raw, &feed); err != nil {
		return nil, false
	}
	return feed, true
}

func (s *RecommendationService) storeForYou(ctx context.Context, userID string, feed []models.Listing) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(feed)
	if err != nil {
		return
	}
	s.Cache.Set(ctx, forYouCacheKey(userID), raw, forYouCacheTTL)
}

func listingIDs(listings []models.Listing) []string {
	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}
	return ids
}
