// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/forkcast/forkcast/internal/middleware"
	"github.com/forkcast/forkcast/internal/recommend"
)

// recommendQuery is the validated query surface of the recommendations
// endpoint. Day and time default to the current wall clock when omitted.
type recommendQuery struct {
	UserID    string `validate:"required"`
	Day       int    `validate:"gte=0,lte=6"`
	TimeOfDay string `validate:"required,timeofday"`
	Count     int    `validate:"gte=0,lte=100"`
}

// GetRecommendations handles GET /api/v1/recommendations/user/{userID}.
//
// Query parameters: day (0-6, 0 = Sunday), time (HH:MM), count. Omitted
// day/time target "now", so a bare request answers "where should I eat
// at this moment".
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	now := time.Now()

	query := recommendQuery{
		UserID:    chi.URLParam(r, "userID"),
		Day:       getIntParam(r, "day", int(now.Weekday())),
		TimeOfDay: r.URL.Query().Get("time"),
		Count:     getIntParam(r, "count", 0),
	}
	if query.TimeOfDay == "" {
		query.TimeOfDay = now.Format("15:04")
	}

	if apiErr := validateRequest(&query); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		UserID:    query.UserID,
		DayOfWeek: query.Day,
		TimeOfDay: query.TimeOfDay,
		Count:     query.Count,
		RequestID: middleware.GetRequestID(r.Context()),
	})
	if err != nil {
		respondCoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, resp, start)
}
