// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/forkcast/forkcast/internal/ledger"
	"github.com/forkcast/forkcast/internal/models"
)

// RecordHeart handles POST /api/v1/hearts.
// Applies a like or unlike mutation to the daily buffer.
func (h *Handler) RecordHeart(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.HeartRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	kind := ledger.Kind(req.Kind)
	venueID := req.VenueID
	if kind == ledger.KindMenuItem {
		venueID = req.ContextVenueID
	}

	isLiked, err := h.store.RecordHeart(r.Context(), req.UserID, kind, venueID, req.MenuItemID, ledger.Action(req.Action))
	if err != nil {
		respondCoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, models.HeartResponse{
		Success: true,
		IsLiked: isLiked,
	}, start)
}

// RemoveHeart handles DELETE /api/v1/hearts.
// Explicitly deletes one matching record from the daily buffer or the
// historical archive. The subject ID arrives as a string; venue IDs are
// normalized to their canonical integer form here.
func (h *Handler) RemoveHeart(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RemoveHeartRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	kind := ledger.Kind(req.Kind)

	var venueID int
	var menuItemID string
	if kind == ledger.KindVenue {
		parsed, err := strconv.Atoi(req.ID.String())
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
				"Venue ID must be a positive integer", err)
			return
		}
		venueID = parsed
	} else {
		menuItemID = req.ID.String()
	}

	removed, err := h.store.RemoveHeart(r.Context(), req.Ledger, req.UserID, kind, venueID, menuItemID)
	if err != nil {
		respondCoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, models.RemoveHeartResponse{
		Success: true,
		Removed: removed,
	}, start)
}

// DailyHearts handles GET /api/v1/hearts/daily/{userID}.
// Returns today's likes as ID sets.
func (h *Handler) DailyHearts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID := chi.URLParam(r, "userID")

	venueIDs, menuItemIDs, err := h.store.ListDailyHearts(r.Context(), userID)
	if err != nil {
		respondCoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, models.DailyHeartsResponse{
		VenueIDs:    venueIDs,
		MenuItemIDs: menuItemIDs,
	}, start)
}

// HistoricalHearts handles GET /api/v1/hearts/history/{userID}.
// Returns the full archived records for a user.
func (h *Handler) HistoricalHearts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID := chi.URLParam(r, "userID")

	venueHearts, menuItemHearts, err := h.store.ListHistoricalHearts(r.Context(), userID)
	if err != nil {
		respondCoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, models.HistoricalHeartsResponse{
		VenueHearts:    venueHearts,
		MenuItemHearts: menuItemHearts,
	}, start)
}
