// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/forkcast/forkcast/internal/ledger"
)

// fakeSource serves canned heart snapshots and counts calls.
type fakeSource struct {
	hearts ledger.UserHearts
	err    error
	calls  int
}

func (f *fakeSource) Snapshot(ctx context.Context, userID string) (ledger.UserHearts, error) {
	f.calls++
	if f.err != nil {
		return ledger.UserHearts{}, f.err
	}
	return f.hearts, nil
}

func newTestEngine(t *testing.T, source HeartSource) *Engine {
	t.Helper()

	engine, err := NewEngine(DefaultConfig(), source, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func TestNewEngineRejectsBadInputs(t *testing.T) {
	if _, err := NewEngine(DefaultConfig(), nil, zerolog.Nop()); err == nil {
		t.Error("NewEngine(nil source) error = nil, want error")
	}

	cfg := DefaultConfig()
	cfg.VenueNeighbors = 0
	if _, err := NewEngine(cfg, &fakeSource{}, zerolog.Nop()); err == nil {
		t.Error("NewEngine(invalid config) error = nil, want error")
	}
}

func TestRecommendEmptyHearts(t *testing.T) {
	engine := newTestEngine(t, &fakeSource{})

	resp, err := engine.Recommend(context.Background(), Request{
		UserID:    "alice",
		DayOfWeek: 1,
		TimeOfDay: "12:00",
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Recommendations) != 0 {
		t.Errorf("recommendations = %+v, want empty for heartless user", resp.Recommendations)
	}
}

func TestRecommendRanksVenues(t *testing.T) {
	source := &fakeSource{
		hearts: ledger.UserHearts{
			VenueHearts: []ledger.HeartEvent{
				heartAt(1, 5, "19:00"),
				heartAt(1, 5, "19:30"),
				heartAt(2, 2, "08:00"),
			},
			MenuItemHearts: []ledger.HeartEvent{
				{UserID: "alice", VenueID: 1, MenuItemID: "carbonara", DayOfWeek: 5, TimeOfDay: "19:15"},
			},
		},
	}
	engine := newTestEngine(t, source)

	resp, err := engine.Recommend(context.Background(), Request{
		UserID:    "alice",
		DayOfWeek: 5,
		TimeOfDay: "19:10",
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if len(resp.Recommendations) == 0 {
		t.Fatal("recommendations empty, want ranked venues")
	}
	if resp.Recommendations[0].VenueID != 1 {
		t.Errorf("top venue = %d, want 1 (Friday-evening pattern)", resp.Recommendations[0].VenueID)
	}
	if resp.Metadata.VenueHearts != 3 || resp.Metadata.MenuHearts != 1 {
		t.Errorf("metadata hearts = %d/%d, want 3/1",
			resp.Metadata.VenueHearts, resp.Metadata.MenuHearts)
	}
	if resp.Metadata.RequestID == "" {
		t.Error("RequestID empty, want generated")
	}

	var sum float64
	for _, rec := range resp.Recommendations {
		sum += rec.Confidence
	}
	if sum > 1.0+1e-9 {
		t.Errorf("confidence sum = %v, want <= 1", sum)
	}
}

func TestRecommendValidation(t *testing.T) {
	engine := newTestEngine(t, &fakeSource{})

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"empty user", Request{DayOfWeek: 1, TimeOfDay: "12:00"}, ErrInvalidUserID},
		{"day too large", Request{UserID: "a", DayOfWeek: 7, TimeOfDay: "12:00"}, ErrInvalidDayOfWeek},
		{"negative day", Request{UserID: "a", DayOfWeek: -1, TimeOfDay: "12:00"}, ErrInvalidDayOfWeek},
		{"bad time format", Request{UserID: "a", DayOfWeek: 1, TimeOfDay: "noon"}, ErrInvalidTimeOfDay},
		{"hour out of range", Request{UserID: "a", DayOfWeek: 1, TimeOfDay: "24:00"}, ErrInvalidTimeOfDay},
		{"minute out of range", Request{UserID: "a", DayOfWeek: 1, TimeOfDay: "12:60"}, ErrInvalidTimeOfDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Recommend(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Recommend() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecommendCountDefaultsAndCap(t *testing.T) {
	hearts := ledger.UserHearts{}
	for v := 1; v <= 20; v++ {
		hearts.VenueHearts = append(hearts.VenueHearts, heartAt(v, 1, "12:00"))
	}
	cfg := DefaultConfig()
	cfg.VenueNeighbors = 20
	cfg.CacheTTL = 0

	engine, err := NewEngine(cfg, &fakeSource{hearts: hearts}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	resp, err := engine.Recommend(context.Background(), Request{
		UserID: "alice", DayOfWeek: 1, TimeOfDay: "12:00",
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Recommendations) != cfg.DefaultCount {
		t.Errorf("default count = %d, want %d", len(resp.Recommendations), cfg.DefaultCount)
	}

	resp, err = engine.Recommend(context.Background(), Request{
		UserID: "alice", DayOfWeek: 1, TimeOfDay: "12:00", Count: 100,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Recommendations) != cfg.MaxCount {
		t.Errorf("capped count = %d, want %d", len(resp.Recommendations), cfg.MaxCount)
	}
}

func TestRecommendCachesResponses(t *testing.T) {
	source := &fakeSource{
		hearts: ledger.UserHearts{
			VenueHearts: []ledger.HeartEvent{heartAt(1, 1, "12:00")},
		},
	}
	engine := newTestEngine(t, source)

	req := Request{UserID: "alice", DayOfWeek: 1, TimeOfDay: "12:00"}

	first, err := engine.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("first Recommend() error = %v", err)
	}
	if first.Metadata.CacheHit {
		t.Error("first response CacheHit = true, want false")
	}

	second, err := engine.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("second Recommend() error = %v", err)
	}
	if !second.Metadata.CacheHit {
		t.Error("second response CacheHit = false, want true")
	}
	if source.calls != 1 {
		t.Errorf("snapshot calls = %d, want 1 (second served from cache)", source.calls)
	}
	if len(second.Recommendations) != len(first.Recommendations) {
		t.Errorf("cached response differs: %d vs %d recommendations",
			len(second.Recommendations), len(first.Recommendations))
	}
}

func TestRecommendPropagatesSourceError(t *testing.T) {
	wantErr := errors.New("store offline")
	engine := newTestEngine(t, &fakeSource{err: wantErr})

	_, err := engine.Recommend(context.Background(), Request{
		UserID: "alice", DayOfWeek: 1, TimeOfDay: "12:00",
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Recommend() error = %v, want wrapped %v", err, wantErr)
	}
}

func TestRecommendDeterministicAcrossRuns(t *testing.T) {
	source := &fakeSource{
		hearts: ledger.UserHearts{
			VenueHearts: []ledger.HeartEvent{
				heartAt(3, 2, "13:00"),
				heartAt(1, 2, "13:00"),
				heartAt(2, 2, "13:00"),
			},
		},
	}
	cfg := DefaultConfig()
	cfg.CacheTTL = 0 // force recomputation every call

	engine, err := NewEngine(cfg, source, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	req := Request{UserID: "alice", DayOfWeek: 2, TimeOfDay: "13:00"}

	first, err := engine.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		resp, err := engine.Recommend(context.Background(), req)
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		for j := range resp.Recommendations {
			if resp.Recommendations[j].VenueID != first.Recommendations[j].VenueID {
				t.Fatalf("run %d ordering differs at %d: %d vs %d",
					i, j, resp.Recommendations[j].VenueID, first.Recommendations[j].VenueID)
			}
		}
	}
}

func TestRecommendCacheDisabled(t *testing.T) {
	source := &fakeSource{
		hearts: ledger.UserHearts{
			VenueHearts: []ledger.HeartEvent{heartAt(1, 1, "12:00")},
		},
	}
	cfg := DefaultConfig()
	cfg.CacheTTL = 0

	engine, err := NewEngine(cfg, source, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	req := Request{UserID: "alice", DayOfWeek: 1, TimeOfDay: "12:00"}
	for i := 0; i < 3; i++ {
		if _, err := engine.Recommend(context.Background(), req); err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
	}
	if source.calls != 3 {
		t.Errorf("snapshot calls = %d, want 3 with caching disabled", source.calls)
	}
}
