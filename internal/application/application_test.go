package application

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/bridgebot/internal/config"
)

func TestNewInitializesDependencies(t *testing.T) {
	opts := baseTestOptions(":8085")
	initial := config.Config{BridgeSymbol: "USDT", SupportedCoins: []string{"BTC"}}
	load := func() (config.Config, error) {
		return config.Config{BridgeSymbol: "BUSD"}, nil
	}

	app, err := New(opts, initial, load, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	cfg, err := app.Storage().Current()
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if cfg.BridgeSymbol != "USDT" {
		t.Fatalf("expected initial config, got %s", cfg.BridgeSymbol)
	}
	if app.server == nil || app.router == nil || app.reloader == nil {
		t.Fatalf("expected server, router, and reloader to be initialized")
	}
	if app.Server() != app.server {
		t.Fatalf("Server accessor did not return underlying instance")
	}

	if _, err := app.Reloader().Reload(context.Background()); err != nil {
		t.Fatalf("Reload returned error: %v", err)
	}
	cfg, _ = app.Storage().Current()
	if cfg.BridgeSymbol != "BUSD" {
		t.Fatalf("expected reloaded config, got %s", cfg.BridgeSymbol)
	}
}

func TestNewRequiresLoader(t *testing.T) {
	if _, err := New(baseTestOptions(":0"), config.Config{}, nil, zaptest.NewLogger(t)); err == nil {
		t.Fatalf("expected error without loader")
	}
}

func TestNewServerAppliesOptions(t *testing.T) {
	opts := baseTestOptions("9090")
	handler := http.NewServeMux()

	server := NewServer(opts, handler)
	if server.Addr != ":9090" {
		t.Fatalf("expected address :9090, got %s", server.Addr)
	}
	if server.Handler != handler {
		t.Fatalf("expected handler to be applied")
	}
	if server.ReadHeaderTimeout != opts.ReadHeaderTimeout ||
		server.WriteTimeout != opts.WriteTimeout ||
		server.IdleTimeout != opts.IdleTimeout {
		t.Fatalf("server timeouts do not match options")
	}
}

func TestRouterServesConfig(t *testing.T) {
	app, err := New(baseTestOptions(":0"), config.Config{Strategy: "default"}, func() (config.Config, error) {
		return config.Config{}, nil
	}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	rec := httptest.NewRecorder()
	app.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/config", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDefaultServerOptions(t *testing.T) {
	opts := DefaultServerOptions()
	if opts.Listen != ":8080" || opts.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
}

func baseTestOptions(listen string) ServerOptions {
	return ServerOptions{
		Listen:               listen,
		ReadHeaderTimeout:    20 * time.Millisecond,
		WriteTimeout:         30 * time.Millisecond,
		IdleTimeout:          40 * time.Millisecond,
		ShutdownGracePeriod:  50 * time.Millisecond,
		EnableRequestLogging: false,
		RateLimitRPS:         0,
		RateLimitBurst:       0,
		ReloadInterval:       0,
	}
}
