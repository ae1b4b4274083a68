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

	"playcourt/config"
	"playcourt/infras/kafka"
	"playcourt/infras/mongo"
	"playcourt/infras/otel"
	"playcourt/shared/constant"
	"playcourt/transport/http/response"
	"playcourt/transport/http/router"

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
	readHeaderTimeout = 10 * time.Second
	healthPingTimeout = 2 * time.Second
	releaseTimeout    = 5 * time.Second
)

type store interface {
	Ping(ctx context.Context) error
	Disconnect(ctx context.Context) error
}

type HTTP struct {
	Config *config.Config
	Router router.Router

	store  store
	kafka  kafka.Client
	otel   otel.Otel
	state  atomic.Int32
	once   sync.Once
	mux    chi.Router
	server *http.Server
	done   chan struct{}
}

func New(cfg *config.Config, r router.Router, db *mongo.Connection, kafka kafka.Client, otel otel.Otel) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		store:  db,
		kafka:  kafka,
		otel:   otel,
		done:   make(chan struct{}),
	}
}

// Serve blocks until the server has been shut down and its resources released.
func (h *HTTP) Serve() {
	h.setup()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-h.done
}

// Adaptor exposes the router as a plain handler for serverless runtimes,
// which own the process lifecycle.
func (h *HTTP) Adaptor() http.HandlerFunc {
	h.once.Do(func() {
		h.setupRoutes()
		h.setState(ServerStateReady)
	})

	return h.mux.ServeHTTP
}

func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Adaptor()(w, r)
}

func (h *HTTP) setup() {
	h.once.Do(h.setupRoutes)

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	h.setupGracefulShutdown()
	h.setState(ServerStateReady)
}

func (h *HTTP) setupRoutes() {
	mux := chi.NewRouter()

	h.Router.SetupRoutes(mux)
	mux.Get("/health", h.healthCheck)

	h.mux = mux
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// healthCheck reports 503 once shutdown has begun or when the store does not answer.
func (h *HTTP) healthCheck(w http.ResponseWriter, r *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("health check failed to reach the store")
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, constant.ResponseHealthy)
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(signals chan os.Signal) {
	<-signals

	defer close(h.done)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
		h.stop()

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.setState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	h.shutdown(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// shutdown stops accepting connections and drains in-flight requests before
// releasing the store, the event producer and the trace exporter. A positive
// drain bounds the wait.
func (h *HTTP) shutdown(drain time.Duration) {
	if h.server != nil {
		ctx := context.Background()

		if drain > 0 {
			var cancel context.CancelFunc

			ctx, cancel = context.WithTimeout(ctx, drain)
			defer cancel()
		}

		if err := h.server.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("HTTP server did not drain in time")
		}
	}

	h.release()
}

// stop closes every connection at once and releases resources.
func (h *HTTP) stop() {
	if h.server != nil {
		if err := h.server.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close HTTP server")
		}
	}

	h.release()
}

func (h *HTTP) release() {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	if err := h.store.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("failed to disconnect from the store")
	}

	if err := h.kafka.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close the kafka producer")
	}

	if err := h.otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to shut down the tracer provider")
	}
}
