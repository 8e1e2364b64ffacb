// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package api

import (
	"net/http"
	"time"
)

// healthStatus is the payload of the health endpoints.
type healthStatus struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	respondSuccess(w, http.StatusOK, healthStatus{
		Status:        "healthy",
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	}, start)
}

// HealthLive handles GET /api/v1/health/live. Process liveness only.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, http.StatusOK, healthStatus{Status: "alive", Version: h.version}, start)
}

// HealthReady handles GET /api/v1/health/ready. Readiness requires a
// round trip through the ledger store.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if _, _, err := h.store.ListDailyHearts(r.Context(), "healthcheck"); err != nil {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY",
			"Ledger storage is not ready", err)
		return
	}

	respondSuccess(w, http.StatusOK, healthStatus{
		Status:        "ready",
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	}, start)
}
