package services

import (
	"context"
	"errors"
	"log"
	"time"

	"marketBack/internal/models"
	"marketBack/internal/repositories"
	"marketBack/utils"

	"github.com/google/uuid"
)

type ListingService struct {
	ListingRepo *repositories.ListingRepository
	UserRepo    *repositories.UserRepository
	Storage     *utils.MediaStorage
}

func (s *ListingService) CreateListing(ctx context.Context, sellerID string, req models.ListingCreate) (models.Listing, error) {
	seller, err := s.UserRepo.GetUserByID(ctx, sellerID)
	if err != nil {
		return models.Listing{}, err
	}
	listing := models.Listing{
		ID:             utils.NewShortID(),
		SellerID:       seller.ID,
		SellerName:     seller.Name,
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		Images:         req.Images,
		Videos:         req.Videos,
		CategoryFields: req.CategoryFields,
		Negotiable:     req.Negotiable,
		Location:       req.Location,
		CreatedAt:      time.Now().UTC(),
	}
	return s.ListingRepo.CreateListing(ctx, listing)
}

// GetListing returns the listing with the seller's current rating inlined.
// Each fetch counts as one view; the counter update is best effort.
func (s *ListingService) GetListing(ctx context.Context, id string) (models.Listing, error) {
	listing, err := s.ListingRepo.GetListingByID(ctx, id)
	if err != nil {
		return models.Listing{}, err
	}
	if err := s.ListingRepo.IncrementViews(ctx, id); err != nil {
		log.Printf("ERROR\tincrement views for listing %s: %v", id, err)
	} else {
		listing.Views++
	}
	if seller, err := s.UserRepo.GetUserByID(ctx, listing.SellerID); err == nil {
		rating := seller.Rating
		count := seller.ReviewCount
		listing.SellerRating = &rating
		listing.SellerReviewCount = &count
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return models.Listing{}, err
	}
	return listing, nil
}

func (s *ListingService) UpdateListing(ctx context.Context, id, actorID, actorRole string, req models.ListingCreate) (models.Listing, error) {
	listing, err := s.ListingRepo.GetListingByID(ctx, id)
	if err != nil {
		return models.Listing{}, err
	}
	if err := authorizeListing(listing, actorID, actorRole); err != nil {
		return models.Listing{}, err
	}
	listing.Title = req.Title
	listing.Description = req.Description
	listing.Price = req.Price
	listing.Category = req.Category
	listing.Images = req.Images
	listing.Videos = req.Videos
	listing.CategoryFields = req.CategoryFields
	listing.Negotiable = req.Negotiable
	listing.Location = req.Location
	if err := s.ListingRepo.UpdateListing(ctx, listing); err != nil {
		return models.Listing{}, err
	}
	return s.ListingRepo.GetListingByID(ctx, id)
}

// DeleteListing removes the listing and every message, offer and favorite
// that references it.
func (s *ListingService) DeleteListing(ctx context.Context, id, actorID, actorRole string) error {
	listing, err := s.ListingRepo.GetListingByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeListing(listing, actorID, actorRole); err != nil {
		return err
	}
	return s.ListingRepo.DeleteListingCascade(ctx, id)
}

func (s *ListingService) GetListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	return s.ListingRepo.GetListings(ctx, filter)
}

func (s *ListingService) GetListingsBySeller(ctx context.Context, sellerID string) ([]models.Listing, error) {
	return s.ListingRepo.GetListingsBySeller(ctx, sellerID)
}

// AttachMedia uploads one media file for the listing and appends its URL to
// the listing's images or videos.
func (s *ListingService) AttachMedia(ctx context.Context, id, actorID, actorRole string, file []byte, contentType string) (models.Listing, error) {
	listing, err := s.ListingRepo.GetListingByID(ctx, id)
	if err != nil {
		return models.Listing{}, err
	}
	if err := authorizeListing(listing, actorID, actorRole); err != nil {
		return models.Listing{}, err
	}

	fileName := uuid.New().String() + extensionFor(contentType)
	url, err := s.Storage.Upload(file, fileName, "listings", contentType)
	if err != nil {
		return models.Listing{}, err
	}
	if isVideoContentType(contentType) {
		listing.Videos = append(listing.Videos, url)
	} else {
		listing.Images = append(listing.Images, url)
	}
	if err := s.ListingRepo.UpdateListing(ctx, listing); err != nil {
		return models.Listing{}, err
	}
	return listing, nil
}

func authorizeListing(listing models.Listing, actorID, actorRole string) error {
	if listing.SellerID == actorID {
		return nil
	}
	if actorRole == models.RoleAdmin || actorRole == models.RoleSuperAdmin {
		return nil
	}
	return models.ErrForbidden
}

func isVideoContentType(contentType string) bool {
	return len(contentType) > 6 && contentType[:6] == "video/"
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	default:
		return ""
	}
}
