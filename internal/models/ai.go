package models

// AIDescriptionRequest asks for generated sales copy for a draft listing.
type AIDescriptionRequest struct {
	Title          string                 `json:"title"`
	Category       string                 `json:"category"`
	CategoryFields map[string]interface{} `json:"category_fields"`
}

// AIPriceRequest asks for a suggested asking price for a draft listing.
type AIPriceRequest struct {
	Title          string                 `json:"title"`
	Category       string                 `json:"category"`
	Condition      *string                `json:"condition"`
	CategoryFields map[string]interface{} `json:"category_fields"`
}

type AIResponse struct {
	Result string `json:"result"`
}
