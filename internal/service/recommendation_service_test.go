package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"wedconnect/internal/dto"
	"wedconnect/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeListingSource struct {
	listings []*models.Listing
	err      error
}

func (f *fakeListingSource) ListActive(_ context.Context) ([]*models.Listing, error) {
	return f.listings, f.err
}

type fakeCompleter struct {
	response string
	err      error
	prompt   string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func sampleListing(id uuid.UUID) *models.Listing {
	return &models.Listing{
		ID:          id,
		VendorID:    uuid.New(),
		CategoryID:  uuid.New(),
		Title:       "Pearl Banquet Hall",
		Description: "Banquet hall with in-house catering",
		Duration:    "8 hours",
		Staff:       "25",
		Packages: []models.Package{
			{Name: "Silver", Description: "Hall and dinner", Price: 350000},
		},
		City:        "Lahore",
		MinPrice:    350000,
		MaxPrice:    650000,
		TotalRating: 4.5,
		Featured:    true,
		Status:      models.ListingStatusActive,
	}
}

func TestProjectListings(t *testing.T) {
	id := uuid.New()
	listing := sampleListing(id)
	listing.Expertise = nil

	projections := ProjectListings([]*models.Listing{listing})

	if len(projections) != 1 {
		t.Fatalf("expected 1 projection, got %d", len(projections))
	}

	p := projections[0]
	if p.ID != id.String() {
		t.Errorf("expected id %s, got %s", id, p.ID)
	}
	if p.Expertise == nil {
		t.Error("nil expertise should project as an empty slice")
	}
	if len(p.Expertise) != 0 {
		t.Errorf("expected empty expertise, got %v", p.Expertise)
	}
	if p.Location != "Lahore" {
		t.Errorf("expected location Lahore, got %s", p.Location)
	}
	if p.PriceRange.Min != 350000 || p.PriceRange.Max != 650000 {
		t.Errorf("unexpected price range: %+v", p.PriceRange)
	}
	if len(p.Packages) != 1 || p.Packages[0].Name != "Silver" {
		t.Errorf("unexpected packages: %+v", p.Packages)
	}
	if p.Packages[0].VenueCapacity != nil {
		t.Error("missing venue capacity should stay nil")
	}
}

func TestBuildRecommendationPrompt(t *testing.T) {
	projections := ProjectListings([]*models.Listing{sampleListing(uuid.New())})

	tests := []struct {
		name        string
		req         *dto.RecommendationRequest
		wantParts   []string
		absentParts []string
	}{
		{
			name: "all preferences set",
			req: &dto.RecommendationRequest{
				Prompt:   "Outdoor ceremony for 300 guests",
				Budget:   500000,
				Style:    "rustic",
				Location: "Lahore",
				Category: []string{"Venues", "Catering"},
			},
			wantParts: []string{
				"- Budget: PKR 500000",
				"- Style preference: rustic",
				"- Location: Lahore",
				"- Categories: Venues, Catering",
				"- Extra preferences: Outdoor ceremony for 300 guests",
				"Pearl Banquet Hall",
				`"listingId": "string"`,
			},
		},
		{
			name: "optional fields omitted",
			req: &dto.RecommendationRequest{
				Prompt: "Something simple",
				Budget: 100000,
			},
			wantParts: []string{
				"- Budget: PKR 100000",
				"- Extra preferences: Something simple",
			},
			absentParts: []string{
				"- Style preference:",
				"- Location:",
				"- Categories:",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, err := buildRecommendationPrompt(tt.req, projections)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for _, part := range tt.wantParts {
				if !strings.Contains(prompt, part) {
					t.Errorf("prompt missing %q", part)
				}
			}
			for _, part := range tt.absentParts {
				if strings.Contains(prompt, part) {
					t.Errorf("prompt should not contain %q", part)
				}
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare object",
			input: `{"recommendations":[],"summary":"none"}`,
			want:  `{"recommendations":[],"summary":"none"}`,
		},
		{
			name:  "object wrapped in prose",
			input: `Sure! Here are the results: {"recommendations":[],"summary":"No matches found."} Hope this helps.`,
			want:  `{"recommendations":[],"summary":"No matches found."}`,
		},
		{
			name:  "object in code fence",
			input: "```json\n{\"summary\":\"ok\"}\n```",
			want:  `{"summary":"ok"}`,
		},
		{
			name:    "no braces at all",
			input:   "I could not find any suitable listings.",
			wantErr: true,
		},
		{
			name:    "closing brace before opening",
			input:   "} nothing here {",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSONObject(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseRecommendationResponse(t *testing.T) {
	text := `Here you go: {"recommendations":[{"listingId":"abc","title":"Hall","matchReason":"fits budget","matchScore":87}],"summary":"One strong match."}`

	result, err := parseRecommendationResponse(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(result.Recommendations))
	}
	if result.Recommendations[0].MatchScore != 87 {
		t.Errorf("expected score 87, got %v", result.Recommendations[0].MatchScore)
	}
	if result.Summary != "One strong match." {
		t.Errorf("unexpected summary: %q", result.Summary)
	}

	if _, err := parseRecommendationResponse(`{"recommendations": not json}`); err == nil {
		t.Error("expected error for invalid JSON body")
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-10, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{150, 100},
	}

	for _, tt := range tests {
		if got := clampScore(tt.in); got != tt.want {
			t.Errorf("clampScore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRecommend(t *testing.T) {
	knownID := uuid.New()
	listing := sampleListing(knownID)

	t.Run("full pipeline", func(t *testing.T) {
		llm := &fakeCompleter{
			response: `Sure! {"recommendations":[` +
				`{"listingId":"` + knownID.String() + `","title":"Pearl Banquet Hall","matchReason":"Within budget in Lahore","matchScore":120},` +
				`{"listingId":"` + uuid.NewString() + `","title":"Made Up Hall","matchReason":"invented","matchScore":90}` +
				`],"summary":"One match."}`,
		}
		svc := NewRecommendationService(&fakeListingSource{listings: []*models.Listing{listing}}, llm, time.Second, zap.NewNop())

		resp, err := svc.Recommend(context.Background(), &dto.RecommendationRequest{
			Prompt: "Venue in Lahore",
			Budget: 500000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(resp.Recommendations) != 1 {
			t.Fatalf("hallucinated listing should be dropped, got %d recommendations", len(resp.Recommendations))
		}
		if resp.Recommendations[0].ListingID != knownID.String() {
			t.Errorf("unexpected listing id: %s", resp.Recommendations[0].ListingID)
		}
		if resp.Recommendations[0].MatchScore != 100 {
			t.Errorf("score should be clamped to 100, got %v", resp.Recommendations[0].MatchScore)
		}
		if !strings.Contains(llm.prompt, "Pearl Banquet Hall") {
			t.Error("prompt should embed the candidate listings")
		}
	})

	t.Run("no active listings", func(t *testing.T) {
		svc := NewRecommendationService(&fakeListingSource{}, &fakeCompleter{}, time.Second, zap.NewNop())

		_, err := svc.Recommend(context.Background(), &dto.RecommendationRequest{Prompt: "x", Budget: 1})
		if err != ErrNoListings {
			t.Errorf("expected ErrNoListings, got %v", err)
		}
	})

	t.Run("inference failure", func(t *testing.T) {
		llm := &fakeCompleter{err: errors.New("upstream timeout")}
		svc := NewRecommendationService(&fakeListingSource{listings: []*models.Listing{listing}}, llm, time.Second, zap.NewNop())

		_, err := svc.Recommend(context.Background(), &dto.RecommendationRequest{Prompt: "x", Budget: 1})
		if err != ErrInferenceFailed {
			t.Errorf("expected ErrInferenceFailed, got %v", err)
		}
	})

	t.Run("malformed model output", func(t *testing.T) {
		llm := &fakeCompleter{response: "I have no recommendations to offer."}
		svc := NewRecommendationService(&fakeListingSource{listings: []*models.Listing{listing}}, llm, time.Second, zap.NewNop())

		_, err := svc.Recommend(context.Background(), &dto.RecommendationRequest{Prompt: "x", Budget: 1})
		if err != ErrMalformedResponse {
			t.Errorf("expected ErrMalformedResponse, got %v", err)
		}
	})

	t.Run("missing summary fails schema validation", func(t *testing.T) {
		llm := &fakeCompleter{response: `{"recommendations":[]}`}
		svc := NewRecommendationService(&fakeListingSource{listings: []*models.Listing{listing}}, llm, time.Second, zap.NewNop())

		_, err := svc.Recommend(context.Background(), &dto.RecommendationRequest{Prompt: "x", Budget: 1})
		if err != ErrMalformedResponse {
			t.Errorf("expected ErrMalformedResponse, got %v", err)
		}
	})

	t.Run("empty recommendations list is valid", func(t *testing.T) {
		llm := &fakeCompleter{response: `{"recommendations":[],"summary":"No matches found."}`}
		svc := NewRecommendationService(&fakeListingSource{listings: []*models.Listing{listing}}, llm, time.Second, zap.NewNop())

		resp, err := svc.Recommend(context.Background(), &dto.RecommendationRequest{Prompt: "x", Budget: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Recommendations) != 0 {
			t.Errorf("expected no recommendations, got %d", len(resp.Recommendations))
		}
		if resp.Summary != "No matches found." {
			t.Errorf("unexpected summary: %q", resp.Summary)
		}
	})
}
