package models

import (
	"time"

	"github.com/google/uuid"
)

type VendorStatus string

const (
	VendorStatusPending  VendorStatus = "PENDING"
	VendorStatusActive   VendorStatus = "ACTIVE"
	VendorStatusDisabled VendorStatus = "DISABLE"
	VendorStatusDeleted  VendorStatus = "DELETE"
)

type Vendor struct {
	ID            uuid.UUID    `db:"id"`
	UserID        uuid.UUID    `db:"user_id"`
	Name          string       `db:"name"`
	Bio           string       `db:"bio"`
	BusinessName  string       `db:"business_name"`
	Tagline       string       `db:"tagline"`
	Description   string       `db:"description"`
	ProfileImage  string       `db:"profile_image"`
	CoverImage    string       `db:"cover_image"`
	MemberSince   time.Time    `db:"member_since"`
	ContactEmail  string       `db:"contact_email"`
	ContactPhone  string       `db:"contact_phone"`
	Website       string       `db:"website"`
	Address       string       `db:"address"`
	City          string       `db:"city"`
	State         string       `db:"state"`
	Country       string       `db:"country"`
	RatingAverage float64      `db:"rating_average"`
	RatingCount   int          `db:"rating_count"`
	IsVerified    bool         `db:"is_verified"`
	Featured      bool         `db:"featured"`
	Status        VendorStatus `db:"status"`
	CreatedAt     time.Time    `db:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at"`
}
