package models

// AdminStats is the dashboard counters block.
type AdminStats struct {
	Users           int `json:"users"`
	VerifiedSellers int `json:"verified_sellers"`
	Admins          int `json:"admins"`
	Listings        int `json:"listings"`
	PinnedListings  int `json:"pinned_listings"`
	Messages        int `json:"messages"`
	Offers          int `json:"offers"`
	OpenTickets     int `json:"open_tickets"`
}
