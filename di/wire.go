//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/ai"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	"frontdesk/internal/domains/appstate"
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/shared/event"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	"github.com/google/wire"

	authService "frontdesk/internal/domains/auth/service"
	barRepository "frontdesk/internal/domains/bar/repository"
	barService "frontdesk/internal/domains/bar/service"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	guestRepository "frontdesk/internal/domains/guest/repository"
	guestService "frontdesk/internal/domains/guest/service"
	hallRepository "frontdesk/internal/domains/hall/repository"
	hallService "frontdesk/internal/domains/hall/service"
	insightService "frontdesk/internal/domains/insight/service"
	noteRepository "frontdesk/internal/domains/note/repository"
	noteService "frontdesk/internal/domains/note/service"
	quoteService "frontdesk/internal/domains/quote/service"
	restaurantRepository "frontdesk/internal/domains/restaurant/repository"
	restaurantService "frontdesk/internal/domains/restaurant/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	staffRepository "frontdesk/internal/domains/staff/repository"
	staffService "frontdesk/internal/domains/staff/service"
	stockRepository "frontdesk/internal/domains/stock/repository"
	stockService "frontdesk/internal/domains/stock/service"

	authHandler "frontdesk/internal/handlers/auth"
	barHandler "frontdesk/internal/handlers/bar"
	bookingHandler "frontdesk/internal/handlers/booking"
	guestHandler "frontdesk/internal/handlers/guest"
	hallHandler "frontdesk/internal/handlers/hall"
	insightHandler "frontdesk/internal/handlers/insight"
	noteHandler "frontdesk/internal/handlers/note"
	quoteHandler "frontdesk/internal/handlers/quote"
	restaurantHandler "frontdesk/internal/handlers/restaurant"
	roomHandler "frontdesk/internal/handlers/room"
	staffHandler "frontdesk/internal/handlers/staff"
	stockHandler "frontdesk/internal/handlers/stock"
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
	ai.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	event.New,
)

var stateDomain = wire.NewSet(
	roomRepository.New,
	hallRepository.New,
	restaurantRepository.NewMenuItem,
	restaurantRepository.NewOrder,
	barRepository.NewProduct,
	barRepository.NewSale,
	stockRepository.New,
	noteRepository.New,
	appstate.ProvideSources,
	appstate.Provide,
)

var operationsDomain = wire.NewSet(
	roomService.New,
	hallService.New,
	restaurantService.NewMenuItem,
	restaurantService.NewOrder,
	barService.New,
	stockService.New,
	noteService.New,
	quoteService.New,
	insightService.New,
)

var frontDeskDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	guestRepository.New,
	guestService.New,
)

var authDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
	authService.New,
)

var domains = wire.NewSet(
	stateDomain,
	operationsDomain,
	frontDeskDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	staffHandler.New,
	roomHandler.New,
	hallHandler.New,
	restaurantHandler.New,
	barHandler.New,
	stockHandler.New,
	noteHandler.New,
	guestHandler.New,
	quoteHandler.New,
	insightHandler.New,
	bookingHandler.New,
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
