package models

import (
	"time"

	"github.com/google/uuid"
)

type ListingStatus string

const (
	ListingStatusActive   ListingStatus = "ACTIVE"
	ListingStatusDisabled ListingStatus = "DISABLE"
	ListingStatusDeleted  ListingStatus = "DELETE"
)

// Package is one bookable tier of a listing. VenueCapacity is nil for
// services that have no venue component.
type Package struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	VenueCapacity *int    `json:"venueCapacity,omitempty"`
}

type Review struct {
	UserID uuid.UUID `json:"userId"`
	Rating int       `json:"rating"`
	Date   time.Time `json:"date"`
}

type Listing struct {
	ID          uuid.UUID     `db:"id"`
	VendorID    uuid.UUID     `db:"vendor_id"`
	CategoryID  uuid.UUID     `db:"category_id"`
	Title       string        `db:"title"`
	Description string        `db:"description"`
	Expertise   []string      `db:"expertise"`
	Duration    string        `db:"duration"`
	Staff       string        `db:"staff"`
	Packages    []Package     `db:"packages"` // stored as JSONB
	MainImage   string        `db:"main_image"`
	Gallery     []string      `db:"gallery"`
	Address     string        `db:"address"`
	City        string        `db:"city"`
	State       string        `db:"state"`
	Country     string        `db:"country"`
	Lat         float64       `db:"lat"`
	Lng         float64       `db:"lng"`
	MinPrice    float64       `db:"min_price"`
	MaxPrice    float64       `db:"max_price"`
	Reviews     []Review      `db:"reviews"` // stored as JSONB
	TotalRating float64       `db:"total_rating"`
	ViewCount   int           `db:"view_count"`
	Featured    bool          `db:"featured"`
	Status      ListingStatus `db:"status"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}
