package models

import "time"

const (
	OfferStatusPending  = "pending"
	OfferStatusAccepted = "accepted"
	OfferStatusRejected = "rejected"
)

type Offer struct {
	ID           string    `json:"id"`
	ListingID    string    `json:"listing_id"`
	BuyerID      string    `json:"buyer_id"`
	SellerID     string    `json:"seller_id"`
	OfferedPrice float64   `json:"offered_price"`
	Message      *string   `json:"message,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// OfferCreate names only the buyer-supplied fields. The seller is always
// derived from the listing, never taken from the request.
type OfferCreate struct {
	ListingID    string  `json:"listing_id"`
	OfferedPrice float64 `json:"offered_price"`
	Message      *string `json:"message"`
}

type OfferAction struct {
	OfferID string `json:"offer_id"`
	Action  string `json:"action"` // accept or reject
}

// OfferDetails inlines counterparty and listing info for the offer inbox.
type OfferDetails struct {
	Offer
	BuyerName     string  `json:"buyer_name,omitempty"`
	SellerName    string  `json:"seller_name,omitempty"`
	ListingTitle  string  `json:"listing_title"`
	ListingImage  *string `json:"listing_image,omitempty"`
	OriginalPrice float64 `json:"original_price,omitempty"`
}
