package router

import (
	"frontdesk/config"
	_ "frontdesk/docs" // swagger spec
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/bar"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/hall"
	"frontdesk/internal/handlers/insight"
	"frontdesk/internal/handlers/note"
	"frontdesk/internal/handlers/quote"
	"frontdesk/internal/handlers/restaurant"
	"frontdesk/internal/handlers/room"
	"frontdesk/internal/handlers/staff"
	"frontdesk/internal/handlers/stock"
	"frontdesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth       auth.Handler
	Staff      staff.Handler
	Room       room.Handler
	Hall       hall.Handler
	Restaurant restaurant.Handler
	Bar        bar.Handler
	Stock      stock.Handler
	Note       note.Handler
	Guest      guest.Handler
	Quote      quote.Handler
	Insight    insight.Handler
	Booking    booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)
	router.Use(r.App.Tracing)

	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(r.corsOptions()))
	}

	router.Use(r.App.RateLimit())

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	// public booking endpoints used by the guest-facing site
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
	})

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)

		routerGroup.Group(func(stateful chi.Router) {
			stateful.Use(r.App.StateGate)

			r.DomainHandlers.Room.Router(stateful)
			r.DomainHandlers.Hall.Router(stateful)
			r.DomainHandlers.Restaurant.Router(stateful)
			r.DomainHandlers.Bar.Router(stateful)
			r.DomainHandlers.Stock.Router(stateful)
			r.DomainHandlers.Note.Router(stateful)
			r.DomainHandlers.Quote.Router(stateful)
			r.DomainHandlers.Insight.Router(stateful)
		})
	})
}

func (r *Router) corsOptions() cors.Options {
	corsConfig := r.Config.App.CORS

	return cors.Options{
		AllowedOrigins:   corsConfig.AllowedOrigins,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAgeSeconds,
	}
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
		Config:         cfg,
	}
}
