package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCanceled  BookingStatus = "CANCELED"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// Booking denormalizes the vendor and customer contact fields so a booking
// row stays readable even if the profiles change later.
type Booking struct {
	ID              uuid.UUID     `db:"id"`
	VendorID        uuid.UUID     `db:"vendor_id"`
	VendorName      string        `db:"vendor_name"`
	VendorEmail     string        `db:"vendor_email"`
	CustomerID      uuid.UUID     `db:"customer_id"`
	CustomerName    string        `db:"customer_name"`
	CustomerEmail   string        `db:"customer_email"`
	ListingID       uuid.UUID     `db:"listing_id"`
	ServiceTitle    string        `db:"service_title"`
	Date            time.Time     `db:"date"`
	Message         string        `db:"message"`
	Amount          float64       `db:"amount"`
	Status          BookingStatus `db:"status"`
	PaymentStatus   PaymentStatus `db:"payment_status"`
	PaymentIntentID string        `db:"payment_intent_id"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
}
