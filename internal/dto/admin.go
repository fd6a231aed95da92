package dto

type OverviewResponse struct {
	TotalUsers           int64             `json:"total_users"`
	TotalVendors         int64             `json:"total_vendors"`
	TotalListings        int64             `json:"total_listings"`
	TotalBookings        int64             `json:"total_bookings"`
	MonthlyRevenue       float64           `json:"monthly_revenue"`
	PendingVerifications int64             `json:"pending_verifications"`
	NewSignupsThisMonth  int64             `json:"new_signups_this_month"`
	ActiveListings       int64             `json:"active_listings"`
	RecentBookings       []BookingResponse `json:"recent_bookings"`
}

type UpdateUserStatusRequest struct {
	IsActive bool `json:"is_active"`
}

type UpdateListingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE DISABLE DELETE"`
}

type UpdateVendorStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING ACTIVE DISABLE DELETE"`
}
