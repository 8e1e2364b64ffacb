// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package recommend

import "testing"

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
	if cfg.VenueNeighbors != 5 || cfg.MenuItemNeighbors != 8 {
		t.Errorf("neighbors = %d/%d, want 5/8", cfg.VenueNeighbors, cfg.MenuItemNeighbors)
	}
	if cfg.VenueWeight != 2.0 || cfg.MenuItemWeight != 1.0 {
		t.Errorf("fusion weights = %v/%v, want 2.0/1.0", cfg.VenueWeight, cfg.MenuItemWeight)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero venue neighbors", func(c *Config) { c.VenueNeighbors = 0 }, true},
		{"zero menu neighbors", func(c *Config) { c.MenuItemNeighbors = 0 }, true},
		{"negative venue weight", func(c *Config) { c.VenueWeight = -1 }, true},
		{"negative menu weight", func(c *Config) { c.MenuItemWeight = -0.5 }, true},
		{"both weights zero", func(c *Config) { c.VenueWeight = 0; c.MenuItemWeight = 0 }, true},
		{"zero default count", func(c *Config) { c.DefaultCount = 0 }, true},
		{"max below default", func(c *Config) { c.MaxCount = 1 }, true},
		{"negative cache ttl", func(c *Config) { c.CacheTTL = -1 }, true},
		{"cache disabled", func(c *Config) { c.CacheTTL = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
