package dto

type PackageInput struct {
	Name          string  `json:"name" validate:"required,max=100"`
	Description   string  `json:"description" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	VenueCapacity *int    `json:"venue_capacity" validate:"omitempty,gt=0"`
}

type CreateListingRequest struct {
	CategoryID  string         `json:"category_id" validate:"required,uuid"`
	Title       string         `json:"title" validate:"required,min=3,max=150"`
	Description string         `json:"description" validate:"required"`
	Expertise   []string       `json:"expertise" validate:"omitempty,dive,max=50"`
	Duration    string         `json:"duration" validate:"required,max=50"`
	Staff       string         `json:"staff" validate:"required,max=50"`
	Packages    []PackageInput `json:"packages" validate:"required,min=1,dive"`
	MainImage   string         `json:"main_image" validate:"required,url"`
	Gallery     []string       `json:"gallery" validate:"omitempty,dive,url"`
	Address     string         `json:"address" validate:"required"`
	City        string         `json:"city" validate:"required"`
	State       string         `json:"state"`
	Country     string         `json:"country" validate:"required"`
	Lat         float64        `json:"lat" validate:"required,latitude"`
	Lng         float64        `json:"lng" validate:"required,longitude"`
	MinPrice    float64        `json:"min_price" validate:"required,gt=0"`
	MaxPrice    float64        `json:"max_price" validate:"required,gtefield=MinPrice"`
}

type UpdateListingRequest struct {
	CategoryID  string         `json:"category_id" validate:"omitempty,uuid"`
	Title       string         `json:"title" validate:"omitempty,min=3,max=150"`
	Description string         `json:"description"`
	Expertise   []string       `json:"expertise" validate:"omitempty,dive,max=50"`
	Duration    string         `json:"duration" validate:"omitempty,max=50"`
	Staff       string         `json:"staff" validate:"omitempty,max=50"`
	Packages    []PackageInput `json:"packages" validate:"omitempty,min=1,dive"`
	MainImage   string         `json:"main_image" validate:"omitempty,url"`
	Gallery     []string       `json:"gallery" validate:"omitempty,dive,url"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	Country     string         `json:"country"`
	Lat         *float64       `json:"lat" validate:"omitempty,latitude"`
	Lng         *float64       `json:"lng" validate:"omitempty,longitude"`
	MinPrice    *float64       `json:"min_price" validate:"omitempty,gt=0"`
	MaxPrice    *float64       `json:"max_price" validate:"omitempty,gt=0"`
	Status      string         `json:"status" validate:"omitempty,oneof=ACTIVE DISABLE DELETE"`
}

// ListListingsQuery carries the public catalogue filters. Zero values mean
// "no filter"; Page and Limit are normalized by the service.
type ListListingsQuery struct {
	Category string  `query:"category" validate:"omitempty,uuid"`
	City     string  `query:"city" validate:"omitempty,max=100"`
	MinPrice float64 `query:"min_price" validate:"omitempty,gte=0"`
	MaxPrice float64 `query:"max_price" validate:"omitempty,gte=0"`
	Search   string  `query:"q" validate:"omitempty,max=200"`
	Page     int     `query:"page" validate:"omitempty,min=1"`
	Limit    int     `query:"limit" validate:"omitempty,min=1,max=100"`
}

type AddReviewRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

type PackageResponse struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	VenueCapacity *int    `json:"venue_capacity,omitempty"`
}

type ListingResponse struct {
	ID          string            `json:"id"`
	VendorID    string            `json:"vendor_id"`
	CategoryID  string            `json:"category_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Expertise   []string          `json:"expertise"`
	Duration    string            `json:"duration"`
	Staff       string            `json:"staff"`
	Packages    []PackageResponse `json:"packages"`
	MainImage   string            `json:"main_image"`
	Gallery     []string          `json:"gallery"`
	Address     string            `json:"address"`
	City        string            `json:"city"`
	State       string            `json:"state,omitempty"`
	Country     string            `json:"country"`
	Lat         float64           `json:"lat"`
	Lng         float64           `json:"lng"`
	MinPrice    float64           `json:"min_price"`
	MaxPrice    float64           `json:"max_price"`
	TotalRating float64           `json:"total_rating"`
	ViewCount   int               `json:"view_count"`
	Featured    bool              `json:"featured"`
	Status      string            `json:"status"`
	CreatedAt   string            `json:"created_at"`
}

type ListListingsResponse struct {
	Listings    []ListingResponse `json:"listings"`
	CurrentPage int               `json:"current_page"`
	TotalPages  int               `json:"total_pages"`
	Total       int64             `json:"total"`
}
