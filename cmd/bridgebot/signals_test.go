package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/bridgebot/internal/config"
	"github.com/eugenenazirov/bridgebot/internal/reload"
	"github.com/eugenenazirov/bridgebot/internal/storage"
)

// deliverSignal makes signalNotify push sig into every registered channel.
func deliverSignal(t *testing.T, sig os.Signal) {
	t.Helper()
	t.Cleanup(func() {
		signalNotify = signal.Notify
	})

	signalNotify = func(ch chan<- os.Signal, _ ...os.Signal) {
		go func() {
			ch <- sig
		}()
	}
}

func TestAwaitShutdownDrainsServerOnSIGTERM(t *testing.T) {
	deliverSignal(t, syscall.SIGTERM)

	server := &http.Server{}
	drained := make(chan struct{}, 1)
	server.RegisterOnShutdown(func() {
		drained <- struct{}{}
	})

	got := awaitShutdown(server, time.Millisecond, zaptest.NewLogger(t))
	if got != syscall.SIGTERM {
		t.Fatalf("expected SIGTERM, got %v", got)
	}

	select {
	case <-drained:
	case <-time.After(time.Second):
		t.Fatalf("expected server shutdown hooks to run")
	}
}

func TestWatchReloadsResolvesAgainOnSIGHUP(t *testing.T) {
	deliverSignal(t, syscall.SIGHUP)

	loaded := make(chan struct{}, 1)
	store := storage.NewMemoryStorage(config.Config{Strategy: "default"})
	reloader := reload.New(func() (config.Config, error) {
		loaded <- struct{}{}
		return config.Config{Strategy: "multiple_coins"}, nil
	}, store, zaptest.NewLogger(t), reload.WithMinInterval(0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watchReloads(ctx, reloader)

	select {
	case <-loaded:
	case <-time.After(time.Second):
		t.Fatalf("expected SIGHUP to trigger a reload")
	}

	deadline := time.Now().Add(time.Second)
	for {
		current, err := store.Current()
		if err == nil && current.Strategy == "multiple_coins" {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected reloaded configuration to be stored, got %+v (err %v)", current, err)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
