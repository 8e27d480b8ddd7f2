package models

import "time"

type Listing struct {
	ID                string                 `json:"id"`
	SellerID          string                 `json:"seller_id"`
	SellerName        string                 `json:"seller_name"`
	Title             string                 `json:"title"`
	Description       string                 `json:"description"`
	Price             float64                `json:"price"`
	Category          string                 `json:"category"`
	Images            []string               `json:"images"`
	Videos            []string               `json:"videos"`
	CategoryFields    map[string]interface{} `json:"category_fields"`
	Negotiable        bool                   `json:"negotiable"`
	Location          *string                `json:"location,omitempty"`
	Views             int                    `json:"views"`
	IsPinned          bool                   `json:"is_pinned"`
	SellerRating      *float64               `json:"seller_rating,omitempty"`
	SellerReviewCount *int                   `json:"seller_review_count,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
}

type ListingCreate struct {
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Price          float64                `json:"price"`
	Category       string                 `json:"category"`
	Images         []string               `json:"images"`
	Videos         []string               `json:"videos"`
	CategoryFields map[string]interface{} `json:"category_fields"`
	Negotiable     bool                   `json:"negotiable"`
	Location       *string                `json:"location"`
}

// ListingFilter narrows the public listing feed.
type ListingFilter struct {
	Category string
	Search   string
	Skip     int
	Limit    int
}
