// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

// Package recommend implements the time-aware venue recommendation engine.
//
// # Architecture
//
// The engine scores venues by how well a user's past hearts match the
// target day-of-week and time-of-day, in four stages:
//
//   - Geometry: circular distance over (day-of-week, time-of-day)
//   - Estimator: inverse-distance-weighted k-nearest-neighbor voting
//     producing a probability distribution over venues
//   - Fusion: venue-level and menu-item-level distributions linearly
//     combined (venue signal weighted twice as heavily) and renormalized
//   - Selection: deterministic top-k extraction with a human-readable
//     confidence string
//
// # Design Principles
//
//   - Deterministic: identical inputs produce identical output ordering
//   - Pure: the estimator, fusion, and selection stages carry no state
//     and may run on any goroutine without locking
//   - Observable: requests are logged with structured fields and counted
//     in Prometheus metrics
//
// # Usage
//
//	engine := recommend.NewEngine(cfg, store, logger)
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    UserID:    "alice",
//	    DayOfWeek: 5,
//	    TimeOfDay: "19:30",
//	})
//
// # Thread Safety
//
// The engine is safe for concurrent use. The only shared mutable state
// is the response cache, which synchronizes internally.
package recommend
