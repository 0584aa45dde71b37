package storage

import (
	"errors"
	"sync"
	"time"

	"github.com/eugenenazirov/bridgebot/internal/config"
)

// ErrNotLoaded indicates no configuration has been stored yet.
var ErrNotLoaded = errors.New("configuration has not been loaded")

// Storage provides access to the configuration currently in effect.
type Storage interface {
	Current() (config.Config, error)
	Replace(cfg config.Config)
	UpdatedAt() time.Time
}

// MemoryStorage keeps the active configuration in memory and guards access
// with a RWMutex. Readers always receive a copy, so a Replace never changes a
// configuration someone else is holding.
type MemoryStorage struct {
	mu        sync.RWMutex
	cfg       config.Config
	loaded    bool
	updatedAt time.Time
	clock     func() time.Time
}

// NewMemoryStorage creates storage seeded with the configuration resolved at startup.
func NewMemoryStorage(initial config.Config) *MemoryStorage {
	s := NewEmptyStorage()
	s.Replace(initial)
	return s
}

// NewEmptyStorage creates storage without a configuration; Current fails
// until Replace is called.
func NewEmptyStorage() *MemoryStorage {
	return &MemoryStorage{
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Current returns a copy of the active configuration.
func (s *MemoryStorage) Current() (config.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return config.Config{}, ErrNotLoaded
	}
	return s.cfg.Clone(), nil
}

// Replace swaps the active configuration for cfg in a single step.
func (s *MemoryStorage) Replace(cfg config.Config) {
	cfg = cfg.Clone()

	s.mu.Lock()
	s.cfg = cfg
	s.loaded = true
	s.updatedAt = s.clock()
	s.mu.Unlock()
}

// UpdatedAt reports when the active configuration was stored.
func (s *MemoryStorage) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
