package router

import (
	"playcourt/config"
	"playcourt/internal/handlers/announcement"
	"playcourt/internal/handlers/auth"
	"playcourt/internal/handlers/booking"
	"playcourt/internal/handlers/coupon"
	"playcourt/internal/handlers/court"
	"playcourt/internal/handlers/user"
	"playcourt/transport/http/middleware"

	// registers the swagger document
	_ "playcourt/docs"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const swaggerDocPath = "/swagger/doc.json"

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Court        court.Handler
	Booking      booking.Handler
	Coupon       coupon.Handler
	Announcement announcement.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.Auth
	Config         *config.Config
}

// SetupRoutes installs the middleware chain and every domain route on the
// root router. Auth runs last so it sees the matched route table.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Recoverer)

	if corsConfig := r.Config.App.CORS; corsConfig.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())
	router.Use(r.AuthMiddleware.Auth)

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerDocPath)))

	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.User.Router(router)
	r.DomainHandlers.Court.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Coupon.Router(router)
	r.DomainHandlers.Announcement.Router(router)
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.Auth, config *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
		Config:         config,
	}
}
