package api

import (
	"testing"
	"time"

	"wedconnect/internal/api/handlers"
	"wedconnect/pkg/auth"

	"go.uber.org/zap"
)

func testHandlers() Handlers {
	logger := zap.NewNop()
	return Handlers{
		Auth:           handlers.NewAuthHandler(nil, logger),
		User:           handlers.NewUserHandler(nil, logger),
		Vendor:         handlers.NewVendorHandler(nil, nil, logger),
		Listing:        handlers.NewListingHandler(nil, logger),
		Booking:        handlers.NewBookingHandler(nil, logger),
		Category:       handlers.NewCategoryHandler(nil, logger),
		Recommendation: handlers.NewRecommendationHandler(nil, logger),
		Chat:           handlers.NewChatHandler(nil, logger),
		Admin:          handlers.NewAdminHandler(nil, nil, logger),
	}
}

func TestSetupRouterRegistersRoutes(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	app := SetupRouter(testHandlers(), jwtManager, zap.NewNop())

	registered := make(map[string]bool)
	for _, route := range app.GetRoutes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"GET /api/v1/listings",
		"GET /api/v1/listings/:id",
		"GET /api/v1/vendors/me",
		"POST /api/v1/recommendations",
		"POST /api/v1/bookings",
		"GET /api/v1/conversations",
		"GET /api/v1/admin/overview",
		"GET /api/v1/admin/users",
		"GET /api/v1/admin/vendors",
		"GET /api/v1/admin/bookings",
		"PUT /api/v1/admin/vendors/:id/verify",
		"PUT /api/v1/admin/vendors/:id/status",
		"PUT /api/v1/admin/listings/:id/status",
	}
	for _, r := range want {
		if !registered[r] {
			t.Errorf("route %s not registered", r)
		}
	}
}
