//go:build wireinject
// +build wireinject

package di

import (
	"hallbook/config"
	"hallbook/infras/jwt"
	"hallbook/infras/kafka"
	"hallbook/infras/otel"
	"hallbook/infras/postgres"
	"hallbook/infras/redis"
	"hallbook/infras/s3"
	"hallbook/permissions"
	"hallbook/shared/cache"
	"hallbook/transport/http"
	"hallbook/transport/http/middleware"
	"hallbook/transport/http/router"

	"github.com/google/wire"

	authService "hallbook/internal/domains/auth/service"
	billingRepository "hallbook/internal/domains/billing/repository"
	billingService "hallbook/internal/domains/billing/service"
	bookingRepository "hallbook/internal/domains/booking/repository"
	bookingService "hallbook/internal/domains/booking/service"
	communicationRepository "hallbook/internal/domains/communication/repository"
	communicationService "hallbook/internal/domains/communication/service"
	featureRepository "hallbook/internal/domains/feature/repository"
	featureService "hallbook/internal/domains/feature/service"
	galleryRepository "hallbook/internal/domains/gallery/repository"
	galleryService "hallbook/internal/domains/gallery/service"
	hallRepository "hallbook/internal/domains/hall/repository"
	hallService "hallbook/internal/domains/hall/service"
	inventoryRepository "hallbook/internal/domains/inventory/repository"
	inventoryService "hallbook/internal/domains/inventory/service"
	micrositeRepository "hallbook/internal/domains/microsite/repository"
	micrositeService "hallbook/internal/domains/microsite/service"
	organizationRepository "hallbook/internal/domains/organization/repository"
	organizationService "hallbook/internal/domains/organization/service"
	paymentRepository "hallbook/internal/domains/payment/repository"
	paymentService "hallbook/internal/domains/payment/service"
	reviewRepository "hallbook/internal/domains/review/repository"
	reviewService "hallbook/internal/domains/review/service"
	serviceRepository "hallbook/internal/domains/service/repository"
	serviceService "hallbook/internal/domains/service/service"
	statsRepository "hallbook/internal/domains/stats/repository"
	statsService "hallbook/internal/domains/stats/service"
	ticketRepository "hallbook/internal/domains/ticket/repository"
	ticketService "hallbook/internal/domains/ticket/service"
	userRepository "hallbook/internal/domains/user/repository"
	userService "hallbook/internal/domains/user/service"

	authHandler "hallbook/internal/handlers/auth"
	billingHandler "hallbook/internal/handlers/billing"
	bookingHandler "hallbook/internal/handlers/booking"
	communicationHandler "hallbook/internal/handlers/communication"
	featureHandler "hallbook/internal/handlers/feature"
	galleryHandler "hallbook/internal/handlers/gallery"
	hallHandler "hallbook/internal/handlers/hall"
	inventoryHandler "hallbook/internal/handlers/inventory"
	micrositeHandler "hallbook/internal/handlers/microsite"
	organizationHandler "hallbook/internal/handlers/organization"
	paymentHandler "hallbook/internal/handlers/payment"
	reviewHandler "hallbook/internal/handlers/review"
	serviceHandler "hallbook/internal/handlers/service"
	statsHandler "hallbook/internal/handlers/stats"
	ticketHandler "hallbook/internal/handlers/ticket"
	userHandler "hallbook/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var organizationDomain = wire.NewSet(
	organizationRepository.New,
	organizationService.New,
)

var hallDomain = wire.NewSet(
	hallRepository.New,
	hallService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	featureRepository.New,
	featureService.New,
	serviceRepository.New,
	serviceService.New,
	inventoryRepository.New,
	inventoryService.New,
	paymentRepository.New,
	paymentService.New,
	communicationRepository.New,
	communicationService.New,
	ticketRepository.New,
	ticketService.New,
)

var storefrontDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
	reviewRepository.New,
	reviewService.New,
	micrositeRepository.New,
	micrositeService.New,
)

var billingDomain = wire.NewSet(
	billingRepository.New,
	billingService.New,
)

var statsDomain = wire.NewSet(
	statsRepository.New,
	statsService.New,
)

var domains = wire.NewSet(
	authDomain,
	organizationDomain,
	hallDomain,
	bookingDomain,
	storefrontDomain,
	billingDomain,
	statsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	organizationHandler.New,
	hallHandler.New,
	bookingHandler.New,
	featureHandler.New,
	serviceHandler.New,
	inventoryHandler.New,
	paymentHandler.New,
	communicationHandler.New,
	ticketHandler.New,
	galleryHandler.New,
	reviewHandler.New,
	micrositeHandler.New,
	billingHandler.New,
	statsHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
