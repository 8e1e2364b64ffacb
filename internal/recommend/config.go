// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package recommend

import (
	"fmt"
	"time"
)

// Config contains all tuning parameters for the recommendation engine.
type Config struct {
	// VenueNeighbors is the k for venue-level hearts.
	// Default: 5.
	VenueNeighbors int `json:"venue_neighbors"`

	// MenuItemNeighbors is the k for menu-item-level hearts. Menu items
	// outnumber venues, so a larger neighborhood smooths noise.
	// Default: 8.
	MenuItemNeighbors int `json:"menu_item_neighbors"`

	// VenueWeight is the fusion weight for the venue-level distribution.
	// Default: 2.0 (venue signal is twice as trusted).
	VenueWeight float64 `json:"venue_weight"`

	// MenuItemWeight is the fusion weight for the menu-item-level
	// distribution. Default: 1.0.
	MenuItemWeight float64 `json:"menu_item_weight"`

	// DefaultCount is the number of recommendations returned when the
	// request does not specify one. Default: 3.
	DefaultCount int `json:"default_count"`

	// MaxCount caps the number of recommendations per request.
	// Default: 10.
	MaxCount int `json:"max_count"`

	// CacheTTL is how long a computed response stays valid. Zero
	// disables response caching.
	CacheTTL time.Duration `json:"cache_ttl"`

	// CacheSize is the maximum number of cached responses.
	CacheSize int `json:"cache_size"`
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		VenueNeighbors:    5,
		MenuItemNeighbors: 8,
		VenueWeight:       2.0,
		MenuItemWeight:    1.0,
		DefaultCount:      3,
		MaxCount:          10,
		CacheTTL:          30 * time.Second,
		CacheSize:         1024,
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.VenueNeighbors <= 0 {
		return fmt.Errorf("venue_neighbors must be positive, got %d", c.VenueNeighbors)
	}
	if c.MenuItemNeighbors <= 0 {
		return fmt.Errorf("menu_item_neighbors must be positive, got %d", c.MenuItemNeighbors)
	}
	if c.VenueWeight < 0 {
		return fmt.Errorf("venue_weight must not be negative, got %v", c.VenueWeight)
	}
	if c.MenuItemWeight < 0 {
		return fmt.Errorf("menu_item_weight must not be negative, got %v", c.MenuItemWeight)
	}
	if c.VenueWeight == 0 && c.MenuItemWeight == 0 {
		return fmt.Errorf("at least one fusion weight must be positive")
	}
	if c.DefaultCount <= 0 {
		return fmt.Errorf("default_count must be positive, got %d", c.DefaultCount)
	}
	if c.MaxCount < c.DefaultCount {
		return fmt.Errorf("max_count %d must be >= default_count %d", c.MaxCount, c.DefaultCount)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must not be negative, got %v", c.CacheTTL)
	}
	return nil
}
