package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/eugenenazirov/bridgebot/internal/throttle"
)

const (
	defaultRateLimitRPS   = 25
	defaultRateLimitBurst = 50
)

// RouterOption configures the behaviour of NewRouter.
type RouterOption func(*routerConfig)

// WithLogging controls whether access logs are emitted.
func WithLogging(enabled bool) RouterOption {
	return func(cfg *routerConfig) {
		cfg.accessLog = enabled
	}
}

// WithLimiter replaces the request limiter; nil disables rate limiting.
func WithLimiter(limiter throttle.Limiter) RouterOption {
	return func(cfg *routerConfig) {
		cfg.limiter = limiter
	}
}

// WithRateLimit configures a token bucket limiter. A zero rate or burst
// disables rate limiting.
func WithRateLimit(ratePerSecond float64, burst int) RouterOption {
	return WithLimiter(throttle.PerSecond(ratePerSecond, burst))
}

type routerConfig struct {
	accessLog bool
	limiter   throttle.Limiter
}

type middleware func(http.Handler) http.Handler

// NewRouter serves the inspection API. Requests pass, outermost first,
// through request id tagging, rate limiting, access logging, panic recovery
// and CORS before reaching the handler.
func NewRouter(handler *Handler, logger *zap.Logger, opts ...RouterOption) http.Handler {
	cfg := routerConfig{
		accessLog: true,
		limiter:   throttle.PerSecond(defaultRateLimitRPS, defaultRateLimitBurst),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", handler.handleHealth)
	mux.HandleFunc("GET /api/config", handler.handleGetConfig)
	mux.HandleFunc("POST /api/config/reload", handler.handleReload)

	chain := []middleware{
		withRequestID,
		limitRequests(cfg.limiter),
	}
	if cfg.accessLog {
		chain = append(chain, logRequests(logger))
	}
	chain = append(chain, recoverPanics(logger), allowCORS)

	var root http.Handler = mux
	for i := len(chain) - 1; i >= 0; i-- {
		root = chain[i](root)
	}
	return root
}
