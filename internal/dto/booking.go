package dto

type CreateBookingRequest struct {
	ListingID string  `json:"listing_id" validate:"required,uuid"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Message   string  `json:"message" validate:"omitempty,max=1000"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED CANCELED"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	VendorID      string  `json:"vendor_id"`
	VendorName    string  `json:"vendor_name"`
	CustomerID    string  `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	ListingID     string  `json:"listing_id"`
	ServiceTitle  string  `json:"service_title"`
	Date          string  `json:"date"`
	Message       string  `json:"message,omitempty"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	CreatedAt     string  `json:"created_at"`
}
