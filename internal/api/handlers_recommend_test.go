// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package api

import (
	"net/http"
	"testing"

	"github.com/goccy/go-json"

	"github.com/forkcast/forkcast/internal/recommend"
)

func TestGetRecommendationsEmptyUser(t *testing.T) {
	srv := newTestServer(t)

	rec, env := doJSON(t, srv, http.MethodGet, "/api/v1/recommendations/user/nobody?day=1&time=12:00", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp recommend.Response
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if len(resp.Recommendations) != 0 {
		t.Errorf("recommendations = %+v, want empty for heartless user", resp.Recommendations)
	}
}

func TestGetRecommendationsReturnsRankedVenues(t *testing.T) {
	srv := newTestServer(t)

	likeVenue(t, srv, "alice", 10)
	likeVenue(t, srv, "alice", 10)
	likeVenue(t, srv, "alice", 20)

	rec, env := doJSON(t, srv, http.MethodGet, "/api/v1/recommendations/user/alice?day=1&time=12:00&count=5", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp recommend.Response
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if len(resp.Recommendations) == 0 {
		t.Fatal("recommendations empty, want ranked venues")
	}
	for i := 1; i < len(resp.Recommendations); i++ {
		if resp.Recommendations[i].Confidence > resp.Recommendations[i-1].Confidence {
			t.Errorf("recommendations not sorted descending at %d", i)
		}
	}
	if resp.Metadata.RequestID == "" {
		t.Error("metadata request ID empty")
	}
}

func TestGetRecommendationsDefaultsToNow(t *testing.T) {
	srv := newTestServer(t)

	likeVenue(t, srv, "alice", 10)

	// No day/time parameters: the handler targets the current moment.
	rec, _ := doJSON(t, srv, http.MethodGet, "/api/v1/recommendations/user/alice", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestGetRecommendationsValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		path string
	}{
		{"day too large", "/api/v1/recommendations/user/alice?day=7&time=12:00"},
		{"negative day", "/api/v1/recommendations/user/alice?day=-1&time=12:00"},
		{"bad time", "/api/v1/recommendations/user/alice?day=1&time=lunchtime"},
		{"count too large", "/api/v1/recommendations/user/alice?day=1&time=12:00&count=500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doJSON(t, srv, http.MethodGet, tt.path, nil)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if env.Error == nil {
				t.Error("error block missing")
			}
		})
	}
}

func TestGetRecommendationsConfidencePayload(t *testing.T) {
	srv := newTestServer(t)

	likeVenue(t, srv, "alice", 10)

	_, env := doJSON(t, srv, http.MethodGet, "/api/v1/recommendations/user/alice?day=1&time=12:00", nil)

	var resp recommend.Response
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if len(resp.Recommendations) != 1 {
		t.Fatalf("recommendations = %d, want 1", len(resp.Recommendations))
	}

	top := resp.Recommendations[0]
	if top.VenueID != 10 {
		t.Errorf("venue = %d, want 10", top.VenueID)
	}
	if top.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0 for the only hearted venue", top.Confidence)
	}
	want := "100.0% match based on your time preferences"
	if top.Reason != want {
		t.Errorf("reason = %q, want %q", top.Reason, want)
	}
}
