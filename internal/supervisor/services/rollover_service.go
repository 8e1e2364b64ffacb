// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// RolloverLedger is the slice of the ledger store the rollover service
// drives.
type RolloverLedger interface {
	Rollover(ctx context.Context) (int, error)
}

// RolloverService periodically triggers the ledger's day-boundary
// transfer. The transfer itself is idempotent per calendar day, so the
// ticker can fire as often as it likes; only the first run after
// midnight migrates anything. The store additionally rolls over lazily
// on mutation, so this service is a safety net for quiet periods.
type RolloverService struct {
	ledger   RolloverLedger
	interval time.Duration
	logger   zerolog.Logger
}

// NewRolloverService creates the rollover ticker service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRolloverService(ledger RolloverLedger, interval time.Duration, logger zerolog.Logger) *RolloverService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &RolloverService{
		ledger:   ledger,
		interval: interval,
		logger:   logger.With().Str("service", "rollover").Logger(),
	}
}

// Serve implements suture.Service. It runs one transfer immediately on
// startup (catching up after a restart across midnight) and then ticks.
func (s *RolloverService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.interval).
		Msg("rollover service starting")

	s.run(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("rollover service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.run(ctx)
		}
	}
}

// run performs one transfer attempt. Errors are logged, not returned:
// a transient storage fault should not restart the service loop, and
// the next tick retries anyway.
func (s *RolloverService) run(ctx context.Context) {
	migrated, err := s.ledger.Rollover(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn().Err(err).Msg("rollover attempt failed")
		return
	}
	if migrated > 0 {
		s.logger.Info().Int("migrated", migrated).Msg("day boundary transfer complete")
	}
}

// String identifies the service in supervisor logs.
func (s *RolloverService) String() string {
	return "ledger-rollover"
}
