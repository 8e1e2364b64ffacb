// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package api

import (
	"time"

	"github.com/forkcast/forkcast/internal/ledger"
	"github.com/forkcast/forkcast/internal/recommend"
)

// Handler bundles the core dependencies the HTTP endpoints call into.
type Handler struct {
	store   *ledger.Store
	engine  *recommend.Engine
	started time.Time
	version string
}

// NewHandler creates the endpoint handler set.
func NewHandler(store *ledger.Store, engine *recommend.Engine, version string) *Handler {
	return &Handler{
		store:   store,
		engine:  engine,
		started: time.Now(),
		version: version,
	}
}
