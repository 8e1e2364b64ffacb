// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

// Package config provides layered configuration for Forkcast using Koanf v2.
//
// Settings are resolved with the following precedence (highest wins):
//
//  1. Environment variables (FORKCAST_ prefix, e.g. FORKCAST_SERVER_PORT)
//  2. YAML config file (config.yaml, or CONFIG_PATH override)
//  3. Built-in defaults
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the Forkcast server.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Ledger    LedgerConfig    `koanf:"ledger"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address. Default: 0.0.0.0
	Host string `koanf:"host"`

	// Port is the listen port. Default: 8790
	Port int `koanf:"port"`

	// Timeout is the per-request read/write timeout.
	Timeout time.Duration `koanf:"timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LedgerConfig holds heart-ledger storage settings.
type LedgerConfig struct {
	// Path is the BadgerDB directory for the preference ledger.
	// Default: /data/forkcast/ledger
	Path string `koanf:"path"`

	// InMemory runs Badger without disk persistence. Tests only.
	InMemory bool `koanf:"in_memory"`

	// RolloverInterval is how often the rollover service checks for a
	// day-boundary transition. The check is idempotent, so the interval
	// only bounds detection latency. Default: 1m
	RolloverInterval time.Duration `koanf:"rollover_interval"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// VenueNeighbors is k for the venue-heart estimator pass. Default: 5
	VenueNeighbors int `koanf:"venue_neighbors"`

	// MenuItemNeighbors is k for the menu-item-heart estimator pass.
	// Menu items outnumber venues, so a larger neighborhood smooths noise.
	// Default: 8
	MenuItemNeighbors int `koanf:"menu_item_neighbors"`

	// VenueWeight is the fusion weight for the venue-level distribution.
	// Default: 2.0
	VenueWeight float64 `koanf:"venue_weight"`

	// MenuItemWeight is the fusion weight for the menu-item-level
	// distribution. Default: 1.0
	MenuItemWeight float64 `koanf:"menu_item_weight"`

	// DefaultCount is the number of recommendations returned when the
	// request does not specify one. Default: 3
	DefaultCount int `koanf:"default_count"`

	// MaxCount caps the number of recommendations per request. Default: 10
	MaxCount int `koanf:"max_count"`

	// CacheTTL is how long a recommendation response stays cached.
	// Zero disables the cache. Default: 1m
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// CacheSize is the maximum number of cached responses. Default: 512
	CacheSize int `koanf:"cache_size"`
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	// RateLimitReqs is the allowed requests per window per client IP.
	RateLimitReqs int `koanf:"rate_limit_reqs"`

	// RateLimitWindow is the rate limit window duration.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// RateLimitDisabled turns off rate limiting entirely.
	RateLimitDisabled bool `koanf:"rate_limit_disabled"`

	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load loads the configuration from defaults, config file, and environment.
func Load() (*Config, error) {
	return loadWithKoanf()
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Ledger.Path == "" && !c.Ledger.InMemory {
		return fmt.Errorf("ledger.path must be set when ledger.in_memory is false")
	}
	if c.Ledger.RolloverInterval <= 0 {
		return fmt.Errorf("ledger.rollover_interval must be positive, got %s", c.Ledger.RolloverInterval)
	}
	if c.Recommend.VenueNeighbors <= 0 {
		return fmt.Errorf("recommend.venue_neighbors must be positive, got %d", c.Recommend.VenueNeighbors)
	}
	if c.Recommend.MenuItemNeighbors <= 0 {
		return fmt.Errorf("recommend.menu_item_neighbors must be positive, got %d", c.Recommend.MenuItemNeighbors)
	}
	if c.Recommend.VenueWeight < 0 || c.Recommend.MenuItemWeight < 0 {
		return fmt.Errorf("recommend fusion weights must be non-negative, got venue=%f menu_item=%f",
			c.Recommend.VenueWeight, c.Recommend.MenuItemWeight)
	}
	if c.Recommend.VenueWeight == 0 && c.Recommend.MenuItemWeight == 0 {
		return fmt.Errorf("at least one recommend fusion weight must be positive")
	}
	if c.Recommend.DefaultCount <= 0 {
		return fmt.Errorf("recommend.default_count must be positive, got %d", c.Recommend.DefaultCount)
	}
	if c.Recommend.MaxCount < c.Recommend.DefaultCount {
		return fmt.Errorf("recommend.max_count (%d) must be >= recommend.default_count (%d)",
			c.Recommend.MaxCount, c.Recommend.DefaultCount)
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs <= 0 {
			return fmt.Errorf("security.rate_limit_reqs must be positive, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}
	return nil
}
