// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package models

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/forkcast/forkcast/internal/ledger"
)

// SubjectKind identifies which heart collection a request targets.
const (
	KindVenue    = "venue"
	KindMenuItem = "menu_item"
)

// Heart actions.
const (
	ActionLike   = "like"
	ActionUnlike = "unlike"
)

// Ledger selectors for explicit removal.
const (
	LedgerDaily      = "daily"
	LedgerHistorical = "historical"
)

// HeartRequest is the body of POST /api/v1/hearts.
//
// VenueID is required for venue hearts. MenuItemID plus ContextVenueID
// (the venue serving the item) are required for menu-item hearts.
type HeartRequest struct {
	UserID         string `json:"user_id" validate:"required"`
	Kind           string `json:"kind" validate:"required,oneof=venue menu_item"`
	Action         string `json:"action" validate:"required,oneof=like unlike"`
	VenueID        int    `json:"venue_id,omitempty" validate:"required_if=Kind venue,omitempty,gt=0"`
	MenuItemID     string `json:"menu_item_id,omitempty" validate:"required_if=Kind menu_item"`
	ContextVenueID int    `json:"context_venue_id,omitempty" validate:"required_if=Kind menu_item,omitempty,gt=0"`
}

// HeartResponse reports the outcome of a heart mutation.
type HeartResponse struct {
	Success bool `json:"success"`
	IsLiked bool `json:"is_liked"`
}

// SubjectID is a heart subject identifier that accepts both JSON string
// and number forms. Clients are inconsistent about quoting venue IDs,
// so both `"id": "5"` and `"id": 5` decode to the same value; the
// handler reconciles it to the canonical integer before it reaches the
// ledger.
type SubjectID string

// UnmarshalJSON decodes a JSON string or number into its string form.
func (id *SubjectID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = SubjectID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("subject id must be a string or number: %w", err)
	}
	*id = SubjectID(n.String())
	return nil
}

func (id SubjectID) String() string {
	return string(id)
}

// RemoveHeartRequest is the body of DELETE /api/v1/hearts.
//
// ID carries the subject identifier in either numeric or string form;
// the handler reconciles the two before reaching the core (venue IDs are
// canonical integers inside the ledger).
type RemoveHeartRequest struct {
	UserID string    `json:"user_id" validate:"required"`
	Ledger string    `json:"ledger" validate:"required,oneof=daily historical"`
	Kind   string    `json:"kind" validate:"required,oneof=venue menu_item"`
	ID     SubjectID `json:"id" validate:"required"`
}

// RemoveHeartResponse reports the outcome of an explicit removal.
type RemoveHeartResponse struct {
	Success bool `json:"success"`
	Removed bool `json:"removed"`
}

// DailyHeartsResponse lists today's likes for a user as ID sets.
type DailyHeartsResponse struct {
	VenueIDs    []int    `json:"venue_ids"`
	MenuItemIDs []string `json:"menu_item_ids"`
}

// HistoricalHeartsResponse returns the full archived records for a user.
type HistoricalHeartsResponse struct {
	VenueHearts    []ledger.HeartEvent `json:"venue_hearts"`
	MenuItemHearts []ledger.HeartEvent `json:"menu_item_hearts"`
}
