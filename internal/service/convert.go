package service

import (
	"time"

	"wedconnect/internal/dto"
	"wedconnect/internal/models"
)

// DTO converters shared by the services. Timestamps are rendered RFC3339.

func toUserResponse(u *models.User) dto.UserResponse {
	saved := make([]string, len(u.SavedVendors))
	for i, id := range u.SavedVendors {
		saved[i] = id.String()
	}

	return dto.UserResponse{
		ID:           u.ID.String(),
		FullName:     u.FullName,
		Email:        u.Email,
		Role:         string(u.Role),
		ProfileImage: u.ProfileImage,
		Phone:        u.Phone,
		City:         u.City,
		State:        u.State,
		Country:      u.Country,
		Zip:          u.Zip,
		IsVerified:   u.IsVerified,
		IsActive:     u.IsActive,
		SavedVendors: saved,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}

func toVendorResponse(v *models.Vendor) dto.VendorResponse {
	return dto.VendorResponse{
		ID:            v.ID.String(),
		UserID:        v.UserID.String(),
		Name:          v.Name,
		Bio:           v.Bio,
		BusinessName:  v.BusinessName,
		Tagline:       v.Tagline,
		Description:   v.Description,
		ProfileImage:  v.ProfileImage,
		CoverImage:    v.CoverImage,
		MemberSince:   v.MemberSince.Format(time.RFC3339),
		ContactEmail:  v.ContactEmail,
		ContactPhone:  v.ContactPhone,
		Website:       v.Website,
		Address:       v.Address,
		City:          v.City,
		State:         v.State,
		Country:       v.Country,
		RatingAverage: v.RatingAverage,
		RatingCount:   v.RatingCount,
		IsVerified:    v.IsVerified,
		Featured:      v.Featured,
		Status:        string(v.Status),
		CreatedAt:     v.CreatedAt.Format(time.RFC3339),
	}
}

func toListingResponse(l *models.Listing) dto.ListingResponse {
	packages := make([]dto.PackageResponse, len(l.Packages))
	for i, p := range l.Packages {
		packages[i] = dto.PackageResponse{
			Name:          p.Name,
			Description:   p.Description,
			Price:         p.Price,
			VenueCapacity: p.VenueCapacity,
		}
	}

	expertise := l.Expertise
	if expertise == nil {
		expertise = []string{}
	}
	gallery := l.Gallery
	if gallery == nil {
		gallery = []string{}
	}

	return dto.ListingResponse{
		ID:          l.ID.String(),
		VendorID:    l.VendorID.String(),
		CategoryID:  l.CategoryID.String(),
		Title:       l.Title,
		Description: l.Description,
		Expertise:   expertise,
		Duration:    l.Duration,
		Staff:       l.Staff,
		Packages:    packages,
		MainImage:   l.MainImage,
		Gallery:     gallery,
		Address:     l.Address,
		City:        l.City,
		State:       l.State,
		Country:     l.Country,
		Lat:         l.Lat,
		Lng:         l.Lng,
		MinPrice:    l.MinPrice,
		MaxPrice:    l.MaxPrice,
		TotalRating: l.TotalRating,
		ViewCount:   l.ViewCount,
		Featured:    l.Featured,
		Status:      string(l.Status),
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
}

func toBookingResponse(b *models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:            b.ID.String(),
		VendorID:      b.VendorID.String(),
		VendorName:    b.VendorName,
		CustomerID:    b.CustomerID.String(),
		CustomerName:  b.CustomerName,
		ListingID:     b.ListingID.String(),
		ServiceTitle:  b.ServiceTitle,
		Date:          b.Date.Format("2006-01-02"),
		Message:       b.Message,
		Amount:        b.Amount,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func toCategoryResponse(c *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func toMessageResponse(m *models.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:             m.ID.String(),
		ConversationID: m.ConversationID.String(),
		SenderID:       m.SenderID.String(),
		Content:        m.Content,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}
