package services

import (
	"context"
	"strings"
	"testing"

	"marketBack/internal/models"
)

type stubOffers struct {
	offers map[string]*models.Offer
}

func newStubOffers(offers ...models.Offer) *stubOffers {
	s := &stubOffers{offers: make(map[string]*models.Offer)}
	for i := range offers {
		o := offers[i]
		s.offers[o.ID] = &o
	}
	return s
}

func (s *stubOffers) CreateOffer(ctx context.Context, offer models.Offer) (models.Offer, error) {
	o := offer
	s.offers[o.ID] = &o
	return o, nil
}

func (s *stubOffers) GetOfferByID(ctx context.Context, id string) (models.Offer, error) {
	if o, ok := s.offers[id]; ok {
		return *o, nil
	}
	return models.Offer{}, models.ErrOfferNotFound
}

func (s *stubOffers) ListBySeller(ctx context.Context, sellerID string) ([]models.Offer, error) {
	var out []models.Offer
	for _, o := range s.offers {
		if o.SellerID == sellerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (s *stubOffers) ListByBuyer(ctx context.Context, buyerID string) ([]models.Offer, error) {
	var out []models.Offer
	for _, o := range s.offers {
		if o.BuyerID == buyerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (s *stubOffers) Resolve(ctx context.Context, id, status string) (bool, error) {
	o, ok := s.offers[id]
	if !ok || o.Status != models.OfferStatusPending {
		return false, nil
	}
	o.Status = status
	return true, nil
}

func offerTestService(offers *stubOffers, messages *stubMessages) *OfferService {
	return &OfferService{
		Offers:   offers,
		Messages: messages,
		Users:    &stubUsers{users: []models.User{{ID: "buyer", Name: "Bela"}, {ID: "seller", Name: "Sam"}}},
		Listings: &stubListings{listings: []models.Listing{{ID: "l1", SellerID: "seller", Title: "Bike", Price: 120, Images: []string{"bike.jpg"}}}},
	}
}

func TestCreateOfferSendsSystemMessage(t *testing.T) {
	offers := newStubOffers()
	messages := &stubMessages{}
	svc := offerTestService(offers, messages)

	note := "would pick up today"
	offer, err := svc.CreateOffer(context.Background(), "buyer", models.OfferCreate{
		ListingID:    "l1",
		OfferedPrice: 90,
		Message:      &note,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offer.Status != models.OfferStatusPending {
		t.Errorf("expected pending offer, got %q", offer.Status)
	}
	if offer.SellerID != "seller" {
		t.Errorf("seller should come from the listing, got %q", offer.SellerID)
	}
	if len(messages.created) != 1 {
		t.Fatalf("expected 1 system message, got %d", len(messages.created))
	}
	content := messages.created[0].Content
	if !strings.Contains(content, "Bela") || !strings.Contains(content, "90.00") {
		t.Errorf("system message missing buyer or price: %q", content)
	}
	if !strings.Contains(content, note) {
		t.Errorf("system message missing the buyer's note: %q", content)
	}
	if messages.created[0].ToUserID != "seller" {
		t.Errorf("system message should go to the seller, got %q", messages.created[0].ToUserID)
	}
}

func TestResolveOfferAccept(t *testing.T) {
	offers := newStubOffers(models.Offer{ID: "o1", ListingID: "l1", BuyerID: "buyer", SellerID: "seller", Status: models.OfferStatusPending})
	messages := &stubMessages{}
	svc := offerTestService(offers, messages)

	offer, err := svc.ResolveOffer(context.Background(), "seller", models.OfferAction{OfferID: "o1", Action: "accept"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offer.Status != models.OfferStatusAccepted {
		t.Errorf("expected accepted, got %q", offer.Status)
	}
	if len(messages.created) != 1 {
		t.Fatalf("expected 1 outcome message, got %d", len(messages.created))
	}
	if !strings.Contains(messages.created[0].Content, "accepted") {
		t.Errorf("outcome message mismatch: %q", messages.created[0].Content)
	}
	if messages.created[0].ToUserID != "buyer" {
		t.Errorf("outcome message should go to the buyer, got %q", messages.created[0].ToUserID)
	}
}

func TestResolveOfferOnlyOnce(t *testing.T) {
	offers := newStubOffers(models.Offer{ID: "o1", ListingID: "l1", BuyerID: "buyer", SellerID: "seller", Status: models.OfferStatusPending})
	svc := offerTestService(offers, &stubMessages{})

	if _, err := svc.ResolveOffer(context.Background(), "seller", models.OfferAction{OfferID: "o1", Action: "accept"}); err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}
	_, err := svc.ResolveOffer(context.Background(), "seller", models.OfferAction{OfferID: "o1", Action: "reject"})
	if err != models.ErrOfferResolved {
		t.Fatalf("expected ErrOfferResolved, got %v", err)
	}
}

func TestResolveOfferSellerOnly(t *testing.T) {
	offers := newStubOffers(models.Offer{ID: "o1", ListingID: "l1", BuyerID: "buyer", SellerID: "seller", Status: models.OfferStatusPending})
	svc := offerTestService(offers, &stubMessages{})

	_, err := svc.ResolveOffer(context.Background(), "buyer", models.OfferAction{OfferID: "o1", Action: "accept"})
	if err != models.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestResolveOfferInvalidAction(t *testing.T) {
	svc := offerTestService(newStubOffers(), &stubMessages{})
	_, err := svc.ResolveOffer(context.Background(), "seller", models.OfferAction{OfferID: "o1", Action: "maybe"})
	if err != models.ErrInvalidOfferAction {
		t.Fatalf("expected ErrInvalidOfferAction, got %v", err)
	}
}

func TestListReceivedInlinesDetails(t *testing.T) {
	offers := newStubOffers(models.Offer{ID: "o1", ListingID: "l1", BuyerID: "buyer", SellerID: "seller", OfferedPrice: 90, Status: models.OfferStatusPending})
	svc := offerTestService(offers, &stubMessages{})

	details, err := svc.ListReceived(context.Background(), "seller")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 offer, got %d", len(details))
	}
	d := details[0]
	if d.BuyerName != "Bela" {
		t.Errorf("buyer name mismatch: %q", d.BuyerName)
	}
	if d.ListingTitle != "Bike" {
		t.Errorf("listing title mismatch: %q", d.ListingTitle)
	}
	if d.OriginalPrice != 120 {
		t.Errorf("original price mismatch: %v", d.OriginalPrice)
	}
}

func TestListSentTombstonesDeletedListing(t *testing.T) {
	offers := newStubOffers(models.Offer{ID: "o1", ListingID: "gone", BuyerID: "buyer", SellerID: "seller", Status: models.OfferStatusPending})
	svc := offerTestService(offers, &stubMessages{})

	details, err := svc.ListSent(context.Background(), "buyer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 offer, got %d", len(details))
	}
	if details[0].ListingTitle != models.DeletedListingTitle {
		t.Errorf("expected deleted listing placeholder, got %q", details[0].ListingTitle)
	}
}
