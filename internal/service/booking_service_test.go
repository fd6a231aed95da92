package service

import (
	"testing"

	"wedconnect/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from models.BookingStatus
		to   models.BookingStatus
		want bool
	}{
		{"pending to confirmed", models.BookingStatusPending, models.BookingStatusConfirmed, true},
		{"pending to canceled", models.BookingStatusPending, models.BookingStatusCanceled, true},
		{"confirmed to canceled", models.BookingStatusConfirmed, models.BookingStatusCanceled, true},
		{"confirmed to pending", models.BookingStatusConfirmed, models.BookingStatusPending, false},
		{"canceled to confirmed", models.BookingStatusCanceled, models.BookingStatusConfirmed, false},
		{"canceled to pending", models.BookingStatusCanceled, models.BookingStatusPending, false},
		{"pending to pending", models.BookingStatusPending, models.BookingStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("canTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
