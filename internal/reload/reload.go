// Package reload re-runs configuration resolution on demand and swaps the
// stored configuration when the new one resolves cleanly.
package reload

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/bridgebot/internal/config"
	"github.com/eugenenazirov/bridgebot/internal/storage"
	"github.com/eugenenazirov/bridgebot/internal/throttle"
)

// ErrThrottled is returned when a reload is requested too soon after the previous one.
var ErrThrottled = errors.New("reload requested too frequently")

// LoadFunc resolves a fresh configuration from current sources.
type LoadFunc func() (config.Config, error)

const defaultMinInterval = 5 * time.Second

// Option configures a Reloader.
type Option func(*Reloader)

// WithMinInterval allows at most one reload per interval. Zero disables throttling.
func WithMinInterval(interval time.Duration) Option {
	return WithLimiter(throttle.Every(interval))
}

// WithLimiter overrides the throttle; nil disables it.
func WithLimiter(l throttle.Limiter) Option {
	return func(r *Reloader) {
		r.limiter = l
	}
}

// Reloader serialises reloads so only one resolution runs at a time.
type Reloader struct {
	load    LoadFunc
	store   storage.Storage
	logger  *zap.Logger
	limiter throttle.Limiter

	mu sync.Mutex
}

// New creates a Reloader that stores successful results in store.
func New(load LoadFunc, store storage.Storage, logger *zap.Logger, opts ...Option) *Reloader {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Reloader{
		load:    load,
		store:   store,
		logger:  logger,
		limiter: throttle.Every(defaultMinInterval),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reload resolves the configuration again. On failure the stored
// configuration is left untouched and the resolution error is returned.
func (r *Reloader) Reload(ctx context.Context) (config.Config, error) {
	if err := ctx.Err(); err != nil {
		return config.Config{}, err
	}
	if !throttle.Allow(r.limiter) {
		return config.Config{}, ErrThrottled
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, err := r.load()
	if err != nil {
		r.logger.Error("configuration reload failed, keeping previous configuration",
			zap.String("kind", config.ErrorKind(err)),
			zap.Error(err),
		)
		return config.Config{}, err
	}

	r.store.Replace(cfg)
	r.logger.Info("configuration reloaded",
		zap.String("bridge", cfg.BridgeSymbol),
		zap.Int("supported_coins", len(cfg.SupportedCoins)),
	)
	return cfg.Clone(), nil
}

// Watch reloads on every value received from signals until ctx is done.
func (r *Reloader) Watch(ctx context.Context, signals <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-signals:
			if !ok {
				return
			}
			r.logger.Info("reload signal received", zap.String("signal", sig.String()))
			if _, err := r.Reload(ctx); errors.Is(err, ErrThrottled) {
				r.logger.Warn("reload skipped", zap.Error(err))
			}
		}
	}
}
