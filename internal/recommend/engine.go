// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/forkcast/forkcast/internal/cache"
	"github.com/forkcast/forkcast/internal/ledger"
	"github.com/forkcast/forkcast/internal/metrics"
)

// Request validation errors, mapped to 400 responses at the boundary.
var (
	ErrInvalidUserID    = errors.New("recommend: user id must not be empty")
	ErrInvalidDayOfWeek = errors.New("recommend: day of week must be in [0, 6]")
	ErrInvalidTimeOfDay = errors.New("recommend: time of day must be HH:MM")
)

// HeartSource supplies the per-user heart snapshot the engine scores.
// Implemented by the ledger store.
type HeartSource interface {
	Snapshot(ctx context.Context, userID string) (ledger.UserHearts, error)
}

// Request asks for recommendations for a user at a weekly time point.
type Request struct {
	// UserID identifies whose hearts to score.
	UserID string

	// DayOfWeek is the target day, 0 = Sunday.
	DayOfWeek int

	// TimeOfDay is the target time as "HH:MM".
	TimeOfDay string

	// Count is the maximum number of recommendations. Zero means the
	// configured default; values above the configured maximum are capped.
	Count int

	// RequestID is generated when empty.
	RequestID string
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID   string `json:"request_id"`
	VenueHearts int    `json:"venue_hearts"`
	MenuHearts  int    `json:"menu_hearts"`
	CacheHit    bool   `json:"cache_hit"`
	LatencyMS   int64  `json:"latency_ms"`
}

// Response is a ranked recommendation list with provenance metadata.
type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
	Metadata        ResponseMetadata `json:"metadata"`
}

// Engine produces time-aware venue recommendations from a user's heart
// history. It is safe for concurrent use.
type Engine struct {
	config Config
	source HeartSource
	logger zerolog.Logger
	cache  *cache.Cache
}

// NewEngine creates a recommendation engine over the given heart source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg Config, source HeartSource, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if source == nil {
		return nil, errors.New("recommend: heart source must not be nil")
	}

	var respCache *cache.Cache
	if cfg.CacheTTL > 0 {
		respCache = cache.New(cfg.CacheSize, cfg.CacheTTL)
	}

	return &Engine{
		config: cfg,
		source: source,
		logger: logger.With().Str("component", "recommend").Logger(),
		cache:  respCache,
	}, nil
}

// Recommend runs the estimate-fuse-select pipeline for a request.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	metrics.RecommendRequests.Inc()
	defer func() {
		metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	}()

	req, targetMinute, err := e.prepareRequest(req)
	if err != nil {
		return nil, err
	}

	logger := e.logger.With().
		Str("request_id", req.RequestID).
		Str("user_id", req.UserID).
		Int("day", req.DayOfWeek).
		Str("time", req.TimeOfDay).
		Logger()
	logger.Debug().Msg("processing recommendation request")

	if resp := e.checkCache(req, start); resp != nil {
		logger.Debug().Msg("cache hit")
		return resp, nil
	}

	hearts, err := e.source.Snapshot(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load heart snapshot: %w", err)
	}

	resp := e.score(req, targetMinute, hearts, start)
	e.storeCache(req, resp)

	if len(resp.Recommendations) == 0 {
		metrics.RecommendEmptyResults.Inc()
		logger.Debug().Msg("no hearts to recommend from")
	} else {
		logger.Debug().
			Int("venue_hearts", resp.Metadata.VenueHearts).
			Int("menu_hearts", resp.Metadata.MenuHearts).
			Int("returned", len(resp.Recommendations)).
			Int64("latency_ms", resp.Metadata.LatencyMS).
			Msg("recommendation complete")
	}

	return resp, nil
}

// prepareRequest validates the request, applies count defaults, and
// resolves the target minute of day.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) (Request, int, error) {
	if req.UserID == "" {
		return req, 0, ErrInvalidUserID
	}
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return req, 0, ErrInvalidDayOfWeek
	}
	minute, err := parseMinuteOfDay(req.TimeOfDay)
	if err != nil {
		return req, 0, err
	}

	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.Count <= 0 {
		req.Count = e.config.DefaultCount
	}
	if req.Count > e.config.MaxCount {
		req.Count = e.config.MaxCount
	}

	return req, minute, nil
}

// score runs the pure pipeline over a heart snapshot.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) score(req Request, targetMinute int, hearts ledger.UserHearts, start time.Time) *Response {
	meta := ResponseMetadata{
		RequestID:   req.RequestID,
		VenueHearts: len(hearts.VenueHearts),
		MenuHearts:  len(hearts.MenuItemHearts),
	}

	if len(hearts.VenueHearts) == 0 && len(hearts.MenuItemHearts) == 0 {
		meta.LatencyMS = time.Since(start).Milliseconds()
		return &Response{Recommendations: []Recommendation{}, Metadata: meta}
	}

	target := TimePoint{Day: req.DayOfWeek, Minute: targetMinute}

	venueProbs := Estimate(target, hearts.VenueHearts, e.config.VenueNeighbors)
	menuProbs := Estimate(target, hearts.MenuItemHearts, e.config.MenuItemNeighbors)
	fused := Fuse(venueProbs, menuProbs, e.config.VenueWeight, e.config.MenuItemWeight)

	meta.LatencyMS = time.Since(start).Milliseconds()
	return &Response{
		Recommendations: SelectTop(fused, req.Count),
		Metadata:        meta,
	}
}

// checkCache returns a copy of a cached response, if any.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) checkCache(req Request, start time.Time) *Response {
	if e.cache == nil {
		return nil
	}

	cached, ok := e.cache.Get(e.cacheKey(req))
	if !ok {
		metrics.RecommendCacheMisses.Inc()
		return nil
	}
	metrics.RecommendCacheHits.Inc()

	resp, ok := cached.(Response)
	if !ok {
		return nil
	}
	resp.Metadata.RequestID = req.RequestID
	resp.Metadata.CacheHit = true
	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	return &resp
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) storeCache(req Request, resp *Response) {
	if e.cache == nil {
		return
	}
	e.cache.Set(e.cacheKey(req), *resp)
}

// cacheKey ignores RequestID: identical queries share one entry.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) cacheKey(req Request) string {
	return req.UserID + "|" + strconv.Itoa(req.DayOfWeek) + "|" + req.TimeOfDay + "|" + strconv.Itoa(req.Count)
}

// parseMinuteOfDay converts a strict "HH:MM" string to a minute of day.
func parseMinuteOfDay(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidTimeOfDay
	}
	hh, err := strconv.Atoi(s[:2])
	if err != nil || hh < 0 || hh > 23 {
		return 0, ErrInvalidTimeOfDay
	}
	mm, err := strconv.Atoi(s[3:])
	if err != nil || mm < 0 || mm > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return hh*60 + mm, nil
}
