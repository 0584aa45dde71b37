package storage

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/eugenenazirov/bridgebot/internal/config"
)

func TestNewMemoryStorageReturnsInitialConfig(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage(config.Config{BridgeSymbol: "USDT", SupportedCoins: []string{"BTC", "ETH"}})

	got, err := store.Current()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.BridgeSymbol != "USDT" {
		t.Fatalf("expected USDT, got %s", got.BridgeSymbol)
	}

	// ensure mutation safety
	got.SupportedCoins[0] = "XRP"
	again, err := store.Current()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(again.SupportedCoins, []string{"BTC", "ETH"}) {
		t.Fatalf("expected defensive copy, got %v", again.SupportedCoins)
	}
}

func TestEmptyStorageReportsNotLoaded(t *testing.T) {
	t.Parallel()

	store := NewEmptyStorage()
	if _, err := store.Current(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
	if !store.UpdatedAt().IsZero() {
		t.Fatalf("expected zero update time")
	}
}

func TestReplaceSwapsConfigAndTimestamp(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	store := NewEmptyStorage()
	store.clock = func() time.Time { return now }

	coins := []string{"ADA"}
	store.Replace(config.Config{Strategy: "default", SupportedCoins: coins})
	coins[0] = "DOT"

	got, err := store.Current()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Strategy != "default" || got.SupportedCoins[0] != "ADA" {
		t.Fatalf("unexpected config: %+v", got)
	}
	if !store.UpdatedAt().Equal(now) {
		t.Fatalf("expected update time %s, got %s", now, store.UpdatedAt())
	}
}

func TestMemoryStorageConcurrentAccess(t *testing.T) {
	store := NewMemoryStorage(config.Config{Strategy: "initial"})
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)

		go func(offset int) {
			defer wg.Done()
			store.Replace(config.Config{Strategy: fmt.Sprintf("s%d", offset), SupportedCoins: []string{"BTC"}})
		}(i)

		go func() {
			defer wg.Done()
			if _, err := store.Current(); err != nil {
				t.Errorf("Current failed: %v", err)
			}
		}()
	}

	wg.Wait()

	// final read should succeed
	if _, err := store.Current(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
