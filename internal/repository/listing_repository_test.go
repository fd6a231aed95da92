package repository

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestBuildCatalogueQuery(t *testing.T) {
	categoryID := uuid.New()
	minPrice := 100000.0
	maxPrice := 500000.0

	tests := []struct {
		name      string
		filter    ListingFilter
		wantParts []string
		wantArgs  int
	}{
		{
			name:      "no filters still restricts to active",
			filter:    ListingFilter{},
			wantParts: []string{"status = $1"},
			wantArgs:  1,
		},
		{
			name:   "category filter",
			filter: ListingFilter{CategoryID: &categoryID},
			wantParts: []string{
				"status = $1",
				"category_id = $2",
			},
			wantArgs: 2,
		},
		{
			name:   "city matches case-insensitively",
			filter: ListingFilter{City: "lahore"},
			wantParts: []string{
				"city ILIKE $2",
			},
			wantArgs: 2,
		},
		{
			name:   "search covers title and description",
			filter: ListingFilter{Search: "banquet"},
			wantParts: []string{
				"title ILIKE $2 OR description ILIKE $3",
			},
			wantArgs: 3,
		},
		{
			name:   "price bounds apply to the starting price",
			filter: ListingFilter{MinPrice: &minPrice, MaxPrice: &maxPrice},
			wantParts: []string{
				"min_price >= $2",
				"min_price <= $3",
			},
			wantArgs: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildCatalogueQuery([]string{"id"}, tt.filter).ToSql()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !strings.HasPrefix(sql, "SELECT id FROM listings") {
				t.Errorf("unexpected query shape: %s", sql)
			}
			for _, part := range tt.wantParts {
				if !strings.Contains(sql, part) {
					t.Errorf("query missing %q: %s", part, sql)
				}
			}
			if len(args) != tt.wantArgs {
				t.Errorf("expected %d args, got %d: %v", tt.wantArgs, len(args), args)
			}
		})
	}
}
