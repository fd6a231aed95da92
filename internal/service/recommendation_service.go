package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"wedconnect/internal/dto"
	"wedconnect/internal/models"
	"wedconnect/pkg/validation"

	"go.uber.org/zap"
)

var (
	ErrNoListings        = errors.New("no listings available to process recommendations")
	ErrInferenceFailed   = errors.New("failed to get recommendations")
	ErrMalformedResponse = errors.New("failed to parse recommendation response")
)

// ListingProjection is the reduced listing view sent to the model. It keeps
// only the fields that matter for matching and drops everything internal.
type ListingProjection struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Expertise   []string            `json:"expertise"`
	Duration    string              `json:"duration"`
	Staff       string              `json:"staff"`
	CategoryID  string              `json:"categoryId"`
	Packages    []PackageProjection `json:"packages"`
	PriceRange  PriceRange          `json:"priceRange"`
	Location    string              `json:"location"`
	Rating      float64             `json:"rating"`
	Featured    bool                `json:"featured"`
}

type PackageProjection struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	VenueCapacity *int    `json:"venueCapacity"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type listingSource interface {
	ListActive(ctx context.Context) ([]*models.Listing, error)
}

type textCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type RecommendationService struct {
	listings listingSource
	llm      textCompleter
	timeout  time.Duration
	logger   *zap.Logger
}

func NewRecommendationService(listings listingSource, llm textCompleter, timeout time.Duration, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		listings: listings,
		llm:      llm,
		timeout:  timeout,
		logger:   logger,
	}
}

// Recommend runs the full matching pipeline: load active listings, project
// them, compose the prompt, call the model once, parse and harden the result.
// The flow is single-shot; any failure is terminal for the request.
func (s *RecommendationService) Recommend(ctx context.Context, req *dto.RecommendationRequest) (*dto.RecommendationResponse, error) {
	listings, err := s.listings.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active listings: %w", err)
	}
	if len(listings) == 0 {
		return nil, ErrNoListings
	}

	projections := ProjectListings(listings)

	prompt, err := buildRecommendationPrompt(req, projections)
	if err != nil {
		return nil, fmt.Errorf("failed to compose prompt: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.llm.Complete(callCtx, prompt)
	if err != nil {
		s.logger.Error("Inference call failed", zap.Error(err))
		return nil, ErrInferenceFailed
	}

	result, err := parseRecommendationResponse(text)
	if err != nil {
		s.logger.Error("Could not parse model output",
			zap.Error(err),
			zap.String("response", text),
		)
		return nil, ErrMalformedResponse
	}

	result.Recommendations = s.harden(result.Recommendations, projections)

	if err := validation.Struct(result); err != nil {
		s.logger.Error("Model output failed schema validation",
			zap.Error(err),
			zap.String("response", text),
		)
		return nil, ErrMalformedResponse
	}

	s.logger.Info("Recommendations generated",
		zap.Int("candidates", len(projections)),
		zap.Int("matches", len(result.Recommendations)),
	)

	return result, nil
}

// ProjectListings maps raw listing records into their model-facing view.
// Optional fields default (missing expertise becomes an empty list, missing
// venue capacity stays null); the input is never mutated.
func ProjectListings(listings []*models.Listing) []ListingProjection {
	projections := make([]ListingProjection, len(listings))
	for i, l := range listings {
		expertise := l.Expertise
		if expertise == nil {
			expertise = []string{}
		}

		packages := make([]PackageProjection, len(l.Packages))
		for j, p := range l.Packages {
			packages[j] = PackageProjection{
				Name:          p.Name,
				Description:   p.Description,
				Price:         p.Price,
				VenueCapacity: p.VenueCapacity,
			}
		}

		projections[i] = ListingProjection{
			ID:          l.ID.String(),
			Title:       l.Title,
			Description: l.Description,
			Expertise:   expertise,
			Duration:    l.Duration,
			Staff:       l.Staff,
			CategoryID:  l.CategoryID.String(),
			Packages:    packages,
			PriceRange:  PriceRange{Min: l.MinPrice, Max: l.MaxPrice},
			Location:    l.City,
			Rating:      l.TotalRating,
			Featured:    l.Featured,
		}
	}
	return projections
}

// buildRecommendationPrompt renders the single instruction block sent to the
// model. Preference clauses are emitted only for fields the caller set; the
// candidate list is embedded as formatted JSON and the output contract is
// spelled out verbatim. Pure function of its inputs.
func buildRecommendationPrompt(req *dto.RecommendationRequest, projections []ListingProjection) (string, error) {
	listingData, err := json.MarshalIndent(projections, "", "  ")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("You are a wedding planning assistant. A couple is looking for ideal wedding service listings.\n\n")
	b.WriteString("User preferences:\n")
	b.WriteString("- Budget: PKR " + strconv.FormatFloat(req.Budget, 'f', -1, 64) + "\n")
	if req.Style != "" {
		b.WriteString("- Style preference: " + req.Style + "\n")
	}
	if req.Location != "" {
		b.WriteString("- Location: " + req.Location + "\n")
	}
	if len(req.Category) > 0 {
		b.WriteString("- Categories: " + strings.Join(req.Category, ", ") + "\n")
	}
	b.WriteString("- Extra preferences: " + req.Prompt + "\n")

	b.WriteString("\nHere are available listings:\n")
	b.Write(listingData)
	b.WriteString("\n\nBased on the couple's preferences and listings provided, recommend the most suitable listings.\n")
	b.WriteString(`
Respond strictly in this JSON format:
{
  "recommendations": [
    {
      "listingId": "string",
      "title": "string",
      "matchReason": "string (why this was recommended)",
      "matchScore": number (0-100)
    }
  ],
  "summary": "string (overview of the recommendations)"
}
`)

	return b.String(), nil
}

// extractJSONObject bounds the substring between the first '{' and the last
// '}' in the text. This is deliberately not a parser; anything the model
// wraps around the object (prose, fences) is discarded.
func extractJSONObject(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", errors.New("no valid JSON object found in response")
	}
	return text[start : end+1], nil
}

func parseRecommendationResponse(text string) (*dto.RecommendationResponse, error) {
	jsonStr, err := extractJSONObject(text)
	if err != nil {
		return nil, err
	}

	var result dto.RecommendationResponse
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("invalid JSON in response: %w", err)
	}

	return &result, nil
}

// harden clamps match scores into [0,100] and drops recommendations whose
// listing id does not belong to the candidate set the model was given.
func (s *RecommendationService) harden(recs []dto.RecommendedListing, projections []ListingProjection) []dto.RecommendedListing {
	known := make(map[string]struct{}, len(projections))
	for _, p := range projections {
		known[p.ID] = struct{}{}
	}

	kept := recs[:0]
	for _, rec := range recs {
		if _, ok := known[rec.ListingID]; !ok {
			s.logger.Warn("Dropping recommendation for unknown listing",
				zap.String("listing_id", rec.ListingID),
			)
			continue
		}
		rec.MatchScore = clampScore(rec.MatchScore)
		kept = append(kept, rec)
	}
	return kept
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
