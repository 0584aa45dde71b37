package application

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/bridgebot/internal/api"
	"github.com/eugenenazirov/bridgebot/internal/config"
	"github.com/eugenenazirov/bridgebot/internal/reload"
	"github.com/eugenenazirov/bridgebot/internal/storage"
)

// ServerOptions holds the settings of the inspection server itself.
type ServerOptions struct {
	Listen               string
	ReadHeaderTimeout    time.Duration
	WriteTimeout         time.Duration
	IdleTimeout          time.Duration
	ShutdownGracePeriod  time.Duration
	EnableRequestLogging bool
	RateLimitRPS         float64
	RateLimitBurst       int
	ReloadInterval       time.Duration
}

// DefaultServerOptions returns the options used when no flags override them.
func DefaultServerOptions() ServerOptions {
	return ServerOptions{
		Listen:               ":8080",
		ReadHeaderTimeout:    5 * time.Second,
		WriteTimeout:         15 * time.Second,
		IdleTimeout:          60 * time.Second,
		ShutdownGracePeriod:  10 * time.Second,
		EnableRequestLogging: true,
		RateLimitRPS:         25,
		RateLimitBurst:       50,
		ReloadInterval:       5 * time.Second,
	}
}

// App encapsulates the configuration holder, reloader and HTTP server.
type App struct {
	storage  storage.Storage
	reloader *reload.Reloader
	router   http.Handler
	logger   *zap.Logger
	server   *http.Server
}

// New wires the application around an already resolved configuration.
// load is called for every reload request.
func New(opts ServerOptions, initial config.Config, load reload.LoadFunc, logger *zap.Logger) (*App, error) {
	if load == nil {
		return nil, errors.New("configuration loader is required")
	}

	store := storage.NewMemoryStorage(initial)
	reloader := reload.New(load, store, logger, reload.WithMinInterval(opts.ReloadInterval))
	handler := api.NewHandler(store, reloader)
	router := api.NewRouter(handler, logger,
		api.WithLogging(opts.EnableRequestLogging),
		api.WithRateLimit(opts.RateLimitRPS, opts.RateLimitBurst),
	)

	return &App{
		storage:  store,
		reloader: reloader,
		router:   router,
		logger:   logger,
		server:   NewServer(opts, router),
	}, nil
}

// NewServer creates and configures an HTTP server from the provided options.
func NewServer(opts ServerOptions, handler http.Handler) *http.Server {
	addr := opts.Listen
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// Reloader returns the reloader used by the API, for signal driven reloads.
func (a *App) Reloader() *reload.Reloader {
	return a.reloader
}

// Storage returns the holder of the active configuration.
func (a *App) Storage() storage.Storage {
	return a.storage
}
