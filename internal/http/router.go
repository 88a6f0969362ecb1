package api

import (
	intconfig "travelapi/internal/config"
	"travelapi/internal/domain"
	h "travelapi/internal/http/handlers"
	"travelapi/internal/http/middleware"
	"travelapi/internal/repositories"
	"travelapi/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires every endpoint against the injected store.
func NewRouter(env intconfig.Env, store repositories.Store, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(env.AllowedOrigins()),
		middleware.RateLimit(env.RateLimitPerMin, logger),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(h.NotFound)
	r.NoMethod(h.MethodNotAllowed)

	system := &h.SystemHandler{Store: store, Driver: env.StoreDriver}

	api := r.Group("/api")
	{
		api.GET("/health", system.Health)
		api.GET("/routes", system.Routes)

		// Auth
		api.GET("/auth/me", h.AuthMe)

		// Listings: buses, hotels, restaurants, private cars, packages, destinations, planners
		for _, kind := range domain.ListingKinds {
			svc := services.NewResourceService(kind, store)
			h.NewResourceHandler(kind, svc).Mount(api.Group(kind.Path()))
		}

		// Bookings
		h.NewBookingHandler(services.NewBookingService(store)).Mount(api.Group(domain.KindBookings.Path()))
	}

	system.Engine = r
	return r
}
