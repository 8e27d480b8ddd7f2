package services

import (
	"context"
	"fmt"
	"time"

	"marketBack/internal/models"

	"github.com/google/uuid"
)

// OfferStore is the slice of the offer repository the service depends on.
type OfferStore interface {
	CreateOffer(ctx context.Context, offer models.Offer) (models.Offer, error)
	GetOfferByID(ctx context.Context, id string) (models.Offer, error)
	ListBySeller(ctx context.Context, sellerID string) ([]models.Offer, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]models.Offer, error)
	Resolve(ctx context.Context, id, status string) (bool, error)
}

type OfferService struct {
	Offers   OfferStore
	Messages MessageStore
	Users    UserDirectory
	Listings ListingDirectory
}

func (s *OfferService) CreateOffer(ctx context.Context, buyerID string, req models.OfferCreate) (models.Offer, error) {
	listing, err := s.Listings.GetListingByID(ctx, req.ListingID)
	if err != nil {
		return models.Offer{}, err
	}
	offer := models.Offer{
		ID:           uuid.New().String(),
		ListingID:    req.ListingID,
		BuyerID:      buyerID,
		SellerID:     listing.SellerID,
		OfferedPrice: req.OfferedPrice,
		Message:      req.Message,
		Status:       models.OfferStatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := s.Offers.CreateOffer(ctx, offer)
	if err != nil {
		return models.Offer{}, err
	}

	buyerName := models.DeletedUserName
	if users, err := s.Users.ListByIDs(ctx, []string{buyerID}); err == nil && len(users) > 0 {
		buyerName = users[0].Name
	}
	content := fmt.Sprintf("New offer from %s: €%.2f", buyerName, req.OfferedPrice)
	if req.Message != nil && *req.Message != "" {
		content += " - " + *req.Message
	}
	system := models.Message{
		ID:          uuid.New().String(),
		ListingID:   req.ListingID,
		FromUserID:  buyerID,
		ToUserID:    listing.SellerID,
		Content:     content,
		MessageType: models.MessageTypeText,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.Messages.CreateMessage(ctx, system); err != nil {
		return models.Offer{}, err
	}
	return created, nil
}

// ResolveOffer moves a pending offer to accepted or rejected. Only the
// listing's seller may resolve it, and only once.
func (s *OfferService) ResolveOffer(ctx context.Context, actorID string, req models.OfferAction) (models.Offer, error) {
	var status string
	switch req.Action {
	case "accept":
		status = models.OfferStatusAccepted
	case "reject":
		status = models.OfferStatusRejected
	default:
		return models.Offer{}, models.ErrInvalidOfferAction
	}

	offer, err := s.Offers.GetOfferByID(ctx, req.OfferID)
	if err != nil {
		return models.Offer{}, err
	}
	if offer.SellerID != actorID {
		return models.Offer{}, models.ErrForbidden
	}

	resolved, err := s.Offers.Resolve(ctx, req.OfferID, status)
	if err != nil {
		return models.Offer{}, err
	}
	if !resolved {
		return models.Offer{}, models.ErrOfferResolved
	}
	offer.Status = status

	title := models.DeletedListingTitle
	if listing, err := s.Listings.GetListingByID(ctx, offer.ListingID); err == nil {
		title = listing.Title
	}
	content := fmt.Sprintf("Your offer was rejected - %s", title)
	if status == models.OfferStatusAccepted {
		content = fmt.Sprintf("Your offer was accepted! - %s", title)
	}
	system := models.Message{
		ID:          uuid.New().String(),
		ListingID:   offer.ListingID,
		FromUserID:  offer.SellerID,
		ToUserID:    offer.BuyerID,
		Content:     content,
		MessageType: models.MessageTypeText,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.Messages.CreateMessage(ctx, system); err != nil {
		return models.Offer{}, err
	}
	return offer, nil
}

// ListReceived returns offers made on the seller's listings, with buyer and
// listing details inlined.
func (s *OfferService) ListReceived(ctx context.Context, sellerID string) ([]models.OfferDetails, error) {
	offers, err := s.Offers.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return s.expandOffers(ctx, offers, true)
}

// ListSent returns the buyer's own offers with seller and listing details.
func (s *OfferService) ListSent(ctx context.Context, buyerID string) ([]models.OfferDetails, error) {
	offers, err := s.Offers.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	return s.expandOffers(ctx, offers, false)
}

func (s *OfferService) expandOffers(ctx context.Context, offers []models.Offer, received bool) ([]models.OfferDetails, error) {
	userIDs := make([]string, 0, len(offers))
	listingIDs := make([]string, 0, len(offers))
	seenUsers := make(map[string]bool)
	seenListings := make(map[string]bool)
	for _, o := range offers {
		other := o.SellerID
		if received {
			other = o.BuyerID
		}
		if !seenUsers[other] {
			seenUsers[other] = true
			userIDs = append(userIDs, other)
		}
		if !seenListings[o.ListingID] {
			seenListings[o.ListingID] = true
			listingIDs = append(listingIDs, o.ListingID)
		}
	}

	users, err := s.Users.ListByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	listings, err := s.Listings.ListByIDs(ctx, listingIDs)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[string]models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}
	listingsByID := make(map[string]models.Listing, len(listings))
	for _, l := range listings {
		listingsByID[l.ID] = l
	}

	details := make([]models.OfferDetails, 0, len(offers))
	for _, o := range offers {
		d := models.OfferDetails{Offer: o, ListingTitle: models.DeletedListingTitle}
		name := models.DeletedUserName
		if received {
			if u, ok := usersByID[o.BuyerID]; ok {
				name = u.Name
			}
			d.BuyerName = name
		} else {
			if u, ok := usersByID[o.SellerID]; ok {
				name = u.Name
			}
			d.SellerName = name
		}
		if l, ok := listingsByID[o.ListingID]; ok {
			d.ListingTitle = l.Title
			if len(l.Images) > 0 {
				image := l.Images[0]
				d.ListingImage = &image
			}
			if received {
				d.OriginalPrice = l.Price
			}
		}
		details = append(details, d)
	}
	return details, nil
}
