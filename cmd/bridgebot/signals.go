package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/bridgebot/internal/reload"
)

var signalNotify = signal.Notify

// watchReloads resolves the configuration again on every SIGHUP until ctx ends.
func watchReloads(ctx context.Context, reloader *reload.Reloader) {
	hup := make(chan os.Signal, 1)
	signalNotify(hup, syscall.SIGHUP)
	go reloader.Watch(ctx, hup)
}

// awaitShutdown blocks until an interrupt or termination signal arrives and
// then drains the server, closing it outright if the grace period runs out.
func awaitShutdown(server *http.Server, grace time.Duration, logger *zap.Logger) os.Signal {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	logger.Info("shutting down server", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
	return sig
}
