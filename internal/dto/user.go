package dto

type UserResponse struct {
	ID           string   `json:"id"`
	FullName     string   `json:"full_name"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	ProfileImage string   `json:"profile_image,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	Country      string   `json:"country,omitempty"`
	Zip          string   `json:"zip,omitempty"`
	IsVerified   bool     `json:"is_verified"`
	IsActive     bool     `json:"is_active"`
	SavedVendors []string `json:"saved_vendors,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName     string `json:"full_name" validate:"omitempty,min=3,max=100"`
	ProfileImage string `json:"profile_image" validate:"omitempty,url"`
	Phone        string `json:"phone" validate:"omitempty,max=20"`
	City         string `json:"city" validate:"omitempty,max=100"`
	State        string `json:"state" validate:"omitempty,max=100"`
	Country      string `json:"country" validate:"omitempty,max=100"`
	Zip          string `json:"zip" validate:"omitempty,max=20"`
}

type SaveVendorRequest struct {
	VendorID string `json:"vendor_id" validate:"required,uuid"`
}
