package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/appstate"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"
	"frontdesk/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 5 * time.Second
	healthPath        = "/health"
)

type HTTP struct {
	Config *config.Config
	Router router.Router
	State  *appstate.Container
	Otel   otel.Otel

	mux    *chi.Mux
	server *http.Server
	status atomic.Int32
	once   sync.Once
}

func New(cfg *config.Config, r router.Router, state *appstate.Container, otel otel.Otel) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		State:  state,
		Otel:   otel,
	}
}

// Serve loads the application state in the background and blocks on the listener.
func (h *HTTP) Serve() {
	h.setup()
	h.setupGracefulShutdown()

	go func() {
		if err := h.State.Load(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to load application state")
		}
	}()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ServeHTTP lets the app run behind a serverless handler. The state is loaded on first use.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.once.Do(func() {
		h.setup()

		if err := h.State.Load(r.Context()); err != nil {
			log.Error().Err(err).Msg("Failed to load application state")
		}
	})

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.mux = chi.NewRouter()
	h.mux.Get(healthPath, h.health)

	h.Router.SetupRoutes(h.mux)
	h.status.Store(int32(ServerStateReady))
}

func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	switch ServerState(h.status.Load()) {
	case ServerStateReady:
		if h.State.Loading() {
			response.WithStateLoading(w)

			return
		}

		response.WithMessage(w, http.StatusOK, "OK")
	case ServerStateInGracePeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
		h.shutdown(context.Background())

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.status.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.status.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	h.shutdown(ctx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) shutdown(ctx context.Context) {
	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shut down HTTP server gracefully")
		}
	}

	// spans still buffered in the batcher are flushed after the last request
	if h.Otel != nil {
		if err := h.Otel.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to flush traces")
		}
	}
}
