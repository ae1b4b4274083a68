//go:build wireinject
// +build wireinject

package di

import (
	"playcourt/config"
	"playcourt/infras/jwt"
	"playcourt/infras/kafka"
	"playcourt/infras/mongo"
	"playcourt/infras/otel"
	"playcourt/infras/redis"
	"playcourt/infras/s3"
	"playcourt/permissions"
	"playcourt/shared/cache"
	"playcourt/transport/http"
	"playcourt/transport/http/middleware"
	"playcourt/transport/http/router"

	announcementRepository "playcourt/internal/domains/announcement/repository"
	announcementService "playcourt/internal/domains/announcement/service"
	authService "playcourt/internal/domains/auth/service"
	bookingRepository "playcourt/internal/domains/booking/repository"
	bookingService "playcourt/internal/domains/booking/service"
	couponRepository "playcourt/internal/domains/coupon/repository"
	couponService "playcourt/internal/domains/coupon/service"
	courtRepository "playcourt/internal/domains/court/repository"
	courtService "playcourt/internal/domains/court/service"
	userRepository "playcourt/internal/domains/user/repository"
	userService "playcourt/internal/domains/user/service"

	announcementHandler "playcourt/internal/handlers/announcement"
	authHandler "playcourt/internal/handlers/auth"
	bookingHandler "playcourt/internal/handlers/booking"
	couponHandler "playcourt/internal/handlers/coupon"
	courtHandler "playcourt/internal/handlers/court"
	userHandler "playcourt/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	mongo.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var courtDomain = wire.NewSet(
	courtRepository.New,
	courtService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var couponDomain = wire.NewSet(
	couponRepository.New,
	couponService.New,
)

var announcementDomain = wire.NewSet(
	announcementRepository.New,
	announcementService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	courtDomain,
	bookingDomain,
	couponDomain,
	announcementDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	courtHandler.New,
	bookingHandler.New,
	couponHandler.New,
	announcementHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
