package reload

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/bridgebot/internal/config"
	"github.com/eugenenazirov/bridgebot/internal/storage"
	"github.com/eugenenazirov/bridgebot/internal/throttle"
)

func TestReloadSwapsOnSuccess(t *testing.T) {
	t.Parallel()

	store := storage.NewMemoryStorage(config.Config{Strategy: "old"})
	r := New(func() (config.Config, error) {
		return config.Config{Strategy: "new"}, nil
	}, store, zaptest.NewLogger(t), WithMinInterval(0))

	got, err := r.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload returned error: %v", err)
	}
	if got.Strategy != "new" {
		t.Fatalf("expected new config, got %s", got.Strategy)
	}

	current, _ := store.Current()
	if current.Strategy != "new" {
		t.Fatalf("expected store to hold new config, got %s", current.Strategy)
	}
}

func TestReloadKeepsPreviousOnFailure(t *testing.T) {
	t.Parallel()

	store := storage.NewMemoryStorage(config.Config{Strategy: "old"})
	loadErr := &config.SafetyError{Setting: "buy_order_type", Value: "market"}
	r := New(func() (config.Config, error) {
		return config.Config{}, loadErr
	}, store, zaptest.NewLogger(t), WithMinInterval(0))

	if _, err := r.Reload(context.Background()); !errors.Is(err, config.ErrSafety) {
		t.Fatalf("expected safety error, got %v", err)
	}

	current, _ := store.Current()
	if current.Strategy != "old" {
		t.Fatalf("expected previous config to survive, got %s", current.Strategy)
	}
}

func TestReloadThrottled(t *testing.T) {
	t.Parallel()

	calls := 0
	store := storage.NewEmptyStorage()
	r := New(func() (config.Config, error) {
		calls++
		return config.Config{}, nil
	}, store, zaptest.NewLogger(t), WithLimiter(throttle.Fixed(false)))

	if _, err := r.Reload(context.Background()); !errors.Is(err, ErrThrottled) {
		t.Fatalf("expected ErrThrottled, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected load not to run when throttled")
	}
}

func TestWithMinIntervalAllowsOneBurst(t *testing.T) {
	t.Parallel()

	r := New(func() (config.Config, error) {
		return config.Config{}, nil
	}, storage.NewEmptyStorage(), zaptest.NewLogger(t), WithMinInterval(time.Hour))

	if _, err := r.Reload(context.Background()); err != nil {
		t.Fatalf("first reload should pass: %v", err)
	}
	if _, err := r.Reload(context.Background()); !errors.Is(err, ErrThrottled) {
		t.Fatalf("second reload should be throttled, got %v", err)
	}
}

func TestReloadHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	r := New(func() (config.Config, error) {
		t.Fatalf("load must not run for a cancelled context")
		return config.Config{}, nil
	}, storage.NewEmptyStorage(), zaptest.NewLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Reload(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWatchReloadsOnSignal(t *testing.T) {
	t.Parallel()

	store := storage.NewMemoryStorage(config.Config{Strategy: "old"})
	loaded := make(chan struct{}, 1)
	r := New(func() (config.Config, error) {
		loaded <- struct{}{}
		return config.Config{Strategy: "new"}, nil
	}, store, zaptest.NewLogger(t), WithMinInterval(0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	done := make(chan struct{})
	go func() {
		r.Watch(ctx, signals)
		close(done)
	}()

	signals <- syscall.SIGHUP

	select {
	case <-loaded:
	case <-time.After(time.Second):
		t.Fatalf("expected reload after signal")
	}

	close(signals)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("expected Watch to return when signals close")
	}

	current, _ := store.Current()
	if current.Strategy != "new" {
		t.Fatalf("expected store to be updated, got %s", current.Strategy)
	}
}
