// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package ledger

import (
	"strconv"
	"time"
)

// Kind identifies which heart collection an event belongs to.
type Kind string

const (
	// KindVenue marks a heart for a dining venue.
	KindVenue Kind = "venue"
	// KindMenuItem marks a heart for a menu item served by a venue.
	KindMenuItem Kind = "menu_item"
)

// Date and time-of-day formats used throughout the ledger.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// HeartEvent is an immutable fact recording that a user expressed a
// preference at a point in time.
//
// VenueID is the liked venue for venue hearts, and the parent venue for
// menu-item hearts (the estimator relabels menu-item hearts by parent
// venue). DayOfWeek and TimeOfDay are derived from the wall-clock
// creation time at insertion and never change afterwards, even if the
// calendar day later rolls over. DateCreated exists only for rollover
// bookkeeping; Timestamp is informational.
type HeartEvent struct {
	UserID      string    `json:"user_id"`
	VenueID     int       `json:"venue_id"`
	MenuItemID  string    `json:"menu_item_id,omitempty"`
	DayOfWeek   int       `json:"day_of_week"` // 0 = Sunday, per time.Weekday
	TimeOfDay   string    `json:"time_of_day"` // "HH:MM", minute precision
	DateCreated string    `json:"date_created"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewVenueHeart creates a venue heart from the given wall-clock instant.
func NewVenueHeart(userID string, venueID int, now time.Time) HeartEvent {
	return HeartEvent{
		UserID:      userID,
		VenueID:     venueID,
		DayOfWeek:   int(now.Weekday()),
		TimeOfDay:   now.Format(timeLayout),
		DateCreated: now.Format(dateLayout),
		Timestamp:   now,
	}
}

// NewMenuItemHeart creates a menu-item heart. venueID is the venue
// serving the item.
func NewMenuItemHeart(userID, menuItemID string, venueID int, now time.Time) HeartEvent {
	ev := NewVenueHeart(userID, venueID, now)
	ev.MenuItemID = menuItemID
	return ev
}

// Kind returns which collection the event belongs to.
func (e HeartEvent) Kind() Kind {
	if e.MenuItemID != "" {
		return KindMenuItem
	}
	return KindVenue
}

// MinuteOfDay parses TimeOfDay into minutes since midnight.
// Malformed values yield 0; events are only created through the
// constructors, so this is a belt for hand-built test fixtures.
func (e HeartEvent) MinuteOfDay() int {
	if len(e.TimeOfDay) != 5 || e.TimeOfDay[2] != ':' {
		return 0
	}
	hh, err := strconv.Atoi(e.TimeOfDay[:2])
	if err != nil {
		return 0
	}
	mm, err := strconv.Atoi(e.TimeOfDay[3:])
	if err != nil {
		return 0
	}
	return hh*60 + mm
}

// matches reports whether the event belongs to userID and targets the
// given subject within its collection.
func (e HeartEvent) matches(userID string, kind Kind, venueID int, menuItemID string) bool {
	if e.UserID != userID || e.Kind() != kind {
		return false
	}
	if kind == KindMenuItem {
		return e.MenuItemID == menuItemID
	}
	return e.VenueID == venueID
}

// dailyDocument is the persisted form of the daily buffer. At most one
// instance exists; it never contains events whose DateCreated precedes
// LastTransferDate.
type dailyDocument struct {
	LastTransferDate string       `json:"last_transfer_date"`
	VenueHearts      []HeartEvent `json:"daily_venue_hearts"`
	MenuItemHearts   []HeartEvent `json:"daily_menu_item_hearts"`
}

// archiveDocument is the persisted form of the historical archive.
// It grows monotonically except for explicit detailed removals.
type archiveDocument struct {
	VenueHearts    []HeartEvent `json:"venue_hearts"`
	MenuItemHearts []HeartEvent `json:"menu_item_hearts"`
}

// UserHearts is the combined per-user snapshot the recommendation engine
// consumes: historical archive hearts followed by current daily hearts.
// The concatenation order is fixed so stable-sort tie-breaking stays
// deterministic per run.
type UserHearts struct {
	VenueHearts    []HeartEvent
	MenuItemHearts []HeartEvent
}
