// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

// Package api provides the HTTP boundary: Chi routing, request
// validation, and JSON encoding for the heart ledger and the
// recommendation engine.
//
// All endpoints live under /api/v1 and respond with the envelope
// defined in internal/models: a status, the payload, response metadata,
// and an optional error block. Identifier normalization happens here —
// venue IDs are canonical integers inside the core, and the boundary
// reconciles numeric-vs-string forms before any core call.
package api
