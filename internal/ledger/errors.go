// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package ledger

import "errors"

// Sentinel errors returned by the ledger store.
var (
	// ErrInvalidUserID indicates a mutation or query with an empty user identifier.
	ErrInvalidUserID = errors.New("ledger: user id must not be empty")

	// ErrInvalidVenueID indicates a venue heart with a non-positive venue identifier.
	ErrInvalidVenueID = errors.New("ledger: venue id must be positive")

	// ErrInvalidMenuItemID indicates a menu-item heart with an empty item identifier.
	ErrInvalidMenuItemID = errors.New("ledger: menu item id must not be empty")

	// ErrStoreClosed indicates an operation on a closed store.
	ErrStoreClosed = errors.New("ledger: store is closed")
)
