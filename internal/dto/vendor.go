package dto

type CreateVendorRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Bio          string `json:"bio" validate:"required,max=500"`
	BusinessName string `json:"business_name" validate:"required,min=2,max=150"`
	Tagline      string `json:"tagline" validate:"omitempty,max=150"`
	Description  string `json:"description" validate:"required"`
	ProfileImage string `json:"profile_image" validate:"omitempty,url"`
	CoverImage   string `json:"cover_image" validate:"omitempty,url"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	ContactPhone string `json:"contact_phone" validate:"required,max=20"`
	Website      string `json:"website" validate:"omitempty,url"`
	Address      string `json:"address" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"omitempty"`
	Country      string `json:"country" validate:"required"`
}

type UpdateVendorRequest struct {
	Name         string `json:"name" validate:"omitempty,min=2,max=100"`
	Bio          string `json:"bio" validate:"omitempty,max=500"`
	BusinessName string `json:"business_name" validate:"omitempty,min=2,max=150"`
	Tagline      string `json:"tagline" validate:"omitempty,max=150"`
	Description  string `json:"description"`
	ProfileImage string `json:"profile_image" validate:"omitempty,url"`
	CoverImage   string `json:"cover_image" validate:"omitempty,url"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,max=20"`
	Website      string `json:"website" validate:"omitempty,url"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

type VendorResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Name          string  `json:"name"`
	Bio           string  `json:"bio"`
	BusinessName  string  `json:"business_name"`
	Tagline       string  `json:"tagline,omitempty"`
	Description   string  `json:"description"`
	ProfileImage  string  `json:"profile_image,omitempty"`
	CoverImage    string  `json:"cover_image,omitempty"`
	MemberSince   string  `json:"member_since"`
	ContactEmail  string  `json:"contact_email"`
	ContactPhone  string  `json:"contact_phone"`
	Website       string  `json:"website,omitempty"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	State         string  `json:"state,omitempty"`
	Country       string  `json:"country"`
	RatingAverage float64 `json:"rating_average"`
	RatingCount   int     `json:"rating_count"`
	IsVerified    bool    `json:"is_verified"`
	Featured      bool    `json:"featured"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}
