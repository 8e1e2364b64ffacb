// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package api

import (
	"errors"
	"net/http"

	"github.com/forkcast/forkcast/internal/ledger"
	"github.com/forkcast/forkcast/internal/recommend"
)

// respondCoreError maps core errors onto HTTP responses. Validation
// failures become 400s; anything else is treated as a storage fault and
// reported as retryable, since the ledger is the single source of truth.
func respondCoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidUserID),
		errors.Is(err, ledger.ErrInvalidVenueID),
		errors.Is(err, ledger.ErrInvalidMenuItemID),
		errors.Is(err, recommend.ErrInvalidUserID),
		errors.Is(err, recommend.ErrInvalidDayOfWeek),
		errors.Is(err, recommend.ErrInvalidTimeOfDay):
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	default:
		respondError(w, http.StatusServiceUnavailable, "STORAGE_ERROR",
			"Ledger storage is unavailable, retry later", err)
	}
}
