package dto

// RecommendationRequest is the inbound payload for listing matching. Only
// Prompt and Budget are mandatory; unset optional filters are omitted from
// the composed model prompt entirely.
type RecommendationRequest struct {
	Prompt   string   `json:"prompt" validate:"required,max=2000"`
	Budget   float64  `json:"budget" validate:"required,gt=0"`
	Style    string   `json:"style" validate:"omitempty,max=100"`
	Location string   `json:"location" validate:"omitempty,max=100"`
	Category []string `json:"category" validate:"omitempty,dive,max=100"`
}

// RecommendedListing mirrors the JSON object the model is instructed to
// emit per match. MatchScore is clamped into [0,100] before it reaches
// the client.
type RecommendedListing struct {
	ListingID   string  `json:"listingId" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	MatchReason string  `json:"matchReason" validate:"required"`
	MatchScore  float64 `json:"matchScore" validate:"gte=0,lte=100"`
}

type RecommendationResponse struct {
	Recommendations []RecommendedListing `json:"recommendations" validate:"omitempty,dive"`
	Summary         string               `json:"summary" validate:"required"`
}
