// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/forkcast/forkcast/internal/metrics"
)

// Badger keys for the two logical ledger documents.
const (
	dailyKey   = "ledger:daily"
	archiveKey = "ledger:history"
)

// conflictRetries bounds optimistic-transaction retries under write contention.
const conflictRetries = 16

// Action selects the mutation applied by RecordHeart.
type Action string

const (
	// ActionLike appends a new heart to the daily buffer.
	ActionLike Action = "like"
	// ActionUnlike removes matching hearts from the daily buffer.
	// It is a no-op (still successful) when no record matches.
	ActionUnlike Action = "unlike"
)

// Ledger selectors for explicit removal.
const (
	SelectDaily      = "daily"
	SelectHistorical = "historical"
)

// Options configure a Store.
type Options struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path string

	// InMemory runs Badger without disk persistence. Tests only.
	InMemory bool

	// Logger is the parent logger; the store derives a component logger from it.
	Logger zerolog.Logger

	// Now overrides the wall clock. Defaults to time.Now.
	Now func() time.Time
}

// Store is the durable preference ledger backed by BadgerDB.
// It is safe for concurrent use.
type Store struct {
	db     *badger.DB
	now    func() time.Time
	logger zerolog.Logger
}

// Open opens (creating if necessary) the ledger store.
func Open(opts Options) (*Store, error) {
	var bopts badger.Options
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		bopts = badger.DefaultOptions(opts.Path)
	}
	// Badger's own logger bypasses zerolog; silence it.
	bopts = bopts.WithLogger(nil)

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open ledger store: %w", err)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Store{
		db:     db,
		now:    now,
		logger: opts.Logger.With().Str("component", "ledger").Logger(),
	}, nil
}

// Close releases the underlying BadgerDB.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordHeart applies a like or unlike mutation to the daily buffer and
// reports whether the subject is liked afterwards. For menu-item hearts,
// venueID is the venue serving the item. A pending day-boundary rollover
// is applied first in the same transaction.
func (s *Store) RecordHeart(ctx context.Context, userID string, kind Kind, venueID int, menuItemID string, action Action) (isLiked bool, err error) {
	defer func(start time.Time) { metrics.ObserveLedgerOp("record_heart", start, err) }(time.Now())

	if err = ctx.Err(); err != nil {
		return false, err
	}
	if err = validateSubject(userID, kind, venueID, menuItemID); err != nil {
		return false, err
	}

	now := s.now()
	today := now.Format(dateLayout)

	err = s.update(func(txn *badger.Txn) error {
		if _, err := s.rolloverTxn(txn, today); err != nil {
			return err
		}

		daily, err := getDaily(txn, today)
		if err != nil {
			return err
		}

		switch action {
		case ActionLike:
			if kind == KindMenuItem {
				daily.MenuItemHearts = append(daily.MenuItemHearts, NewMenuItemHeart(userID, menuItemID, venueID, now))
			} else {
				daily.VenueHearts = append(daily.VenueHearts, NewVenueHeart(userID, venueID, now))
			}
		case ActionUnlike:
			if kind == KindMenuItem {
				daily.MenuItemHearts, _ = removeMatching(daily.MenuItemHearts, userID, kind, venueID, menuItemID)
			} else {
				daily.VenueHearts, _ = removeMatching(daily.VenueHearts, userID, kind, venueID, menuItemID)
			}
		default:
			return fmt.Errorf("ledger: unknown action %q", action)
		}

		return putJSON(txn, dailyKey, daily)
	})
	if err != nil {
		return false, err
	}

	metrics.RecordHeartMutation(string(kind), string(action))
	return action == ActionLike, nil
}

// ListDailyHearts returns the IDs of today's likes for a user.
//
// Events still sitting in the buffer from a previous day (rollover not
// yet applied) are excluded: they are historical regardless of where
// they are stored.
func (s *Store) ListDailyHearts(ctx context.Context, userID string) (venueIDs []int, menuItemIDs []string, err error) {
	defer func(start time.Time) { metrics.ObserveLedgerOp("list_daily", start, err) }(time.Now())

	if err = ctx.Err(); err != nil {
		return nil, nil, err
	}
	if userID == "" {
		return nil, nil, ErrInvalidUserID
	}

	today := s.now().Format(dateLayout)
	venueIDs = []int{}
	menuItemIDs = []string{}

	err = s.view(func(txn *badger.Txn) error {
		daily, err := getDaily(txn, today)
		if err != nil {
			return err
		}

		seenVenues := make(map[int]struct{})
		for _, ev := range daily.VenueHearts {
			if ev.UserID != userID || ev.DateCreated != today {
				continue
			}
			if _, ok := seenVenues[ev.VenueID]; ok {
				continue
			}
			seenVenues[ev.VenueID] = struct{}{}
			venueIDs = append(venueIDs, ev.VenueID)
		}

		seenItems := make(map[string]struct{})
		for _, ev := range daily.MenuItemHearts {
			if ev.UserID != userID || ev.DateCreated != today {
				continue
			}
			if _, ok := seenItems[ev.MenuItemID]; ok {
				continue
			}
			seenItems[ev.MenuItemID] = struct{}{}
			menuItemIDs = append(menuItemIDs, ev.MenuItemID)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return venueIDs, menuItemIDs, nil
}

// ListHistoricalHearts returns the full archived records for a user.
func (s *Store) ListHistoricalHearts(ctx context.Context, userID string) (venue, menuItem []HeartEvent, err error) {
	defer func(start time.Time) { metrics.ObserveLedgerOp("list_historical", start, err) }(time.Now())

	if err = ctx.Err(); err != nil {
		return nil, nil, err
	}
	if userID == "" {
		return nil, nil, ErrInvalidUserID
	}

	venue = []HeartEvent{}
	menuItem = []HeartEvent{}

	err = s.view(func(txn *badger.Txn) error {
		archive, err := getArchive(txn)
		if err != nil {
			return err
		}
		for _, ev := range archive.VenueHearts {
			if ev.UserID == userID {
				venue = append(venue, ev)
			}
		}
		for _, ev := range archive.MenuItemHearts {
			if ev.UserID == userID {
				menuItem = append(menuItem, ev)
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return venue, menuItem, nil
}

// RemoveHeart deletes one matching record from the selected ledger
// (SelectDaily or SelectHistorical). It reports whether a record was
// removed; removing a non-existent record is not an error. A pending
// day-boundary rollover is applied first so the selector sees events in
// the ledger they belong to, not where they happen to be stored.
func (s *Store) RemoveHeart(ctx context.Context, selector, userID string, kind Kind, venueID int, menuItemID string) (removed bool, err error) {
	defer func(start time.Time) { metrics.ObserveLedgerOp("remove_heart", start, err) }(time.Now())

	if err = ctx.Err(); err != nil {
		return false, err
	}
	if userID == "" {
		return false, ErrInvalidUserID
	}
	// Unlike RecordHeart, menu-item removal matches by item ID alone, so
	// no context venue is required here.
	switch kind {
	case KindVenue:
		if venueID <= 0 {
			return false, ErrInvalidVenueID
		}
	case KindMenuItem:
		if menuItemID == "" {
			return false, ErrInvalidMenuItemID
		}
	default:
		return false, fmt.Errorf("ledger: unknown heart kind %q", kind)
	}
	if selector != SelectDaily && selector != SelectHistorical {
		return false, fmt.Errorf("ledger: unknown ledger selector %q", selector)
	}

	today := s.now().Format(dateLayout)

	err = s.update(func(txn *badger.Txn) error {
		removed = false

		if _, err := s.rolloverTxn(txn, today); err != nil {
			return err
		}

		if selector == SelectDaily {
			daily, err := getDaily(txn, today)
			if err != nil {
				return err
			}
			if kind == KindMenuItem {
				daily.MenuItemHearts, removed = removeFirst(daily.MenuItemHearts, userID, kind, venueID, menuItemID)
			} else {
				daily.VenueHearts, removed = removeFirst(daily.VenueHearts, userID, kind, venueID, menuItemID)
			}
			return putJSON(txn, dailyKey, daily)
		}

		archive, err := getArchive(txn)
		if err != nil {
			return err
		}
		if kind == KindMenuItem {
			archive.MenuItemHearts, removed = removeFirst(archive.MenuItemHearts, userID, kind, venueID, menuItemID)
		} else {
			archive.VenueHearts, removed = removeFirst(archive.VenueHearts, userID, kind, venueID, menuItemID)
		}
		return putJSON(txn, archiveKey, archive)
	})
	if err != nil {
		return false, err
	}

	if removed {
		metrics.RecordHeartMutation(string(kind), "remove")
	}
	return removed, nil
}

// Snapshot returns the user's combined heart sets: historical archive
// events followed by current daily-buffer events. The recommendation
// engine consumes this read-only view without further locking.
func (s *Store) Snapshot(ctx context.Context, userID string) (hearts UserHearts, err error) {
	defer func(start time.Time) { metrics.ObserveLedgerOp("snapshot", start, err) }(time.Now())

	if err = ctx.Err(); err != nil {
		return UserHearts{}, err
	}
	if userID == "" {
		return UserHearts{}, ErrInvalidUserID
	}

	today := s.now().Format(dateLayout)

	err = s.view(func(txn *badger.Txn) error {
		archive, err := getArchive(txn)
		if err != nil {
			return err
		}
		daily, err := getDaily(txn, today)
		if err != nil {
			return err
		}

		for _, ev := range archive.VenueHearts {
			if ev.UserID == userID {
				hearts.VenueHearts = append(hearts.VenueHearts, ev)
			}
		}
		for _, ev := range daily.VenueHearts {
			if ev.UserID == userID {
				hearts.VenueHearts = append(hearts.VenueHearts, ev)
			}
		}
		for _, ev := range archive.MenuItemHearts {
			if ev.UserID == userID {
				hearts.MenuItemHearts = append(hearts.MenuItemHearts, ev)
			}
		}
		for _, ev := range daily.MenuItemHearts {
			if ev.UserID == userID {
				hearts.MenuItemHearts = append(hearts.MenuItemHearts, ev)
			}
		}
		return nil
	})
	if err != nil {
		return UserHearts{}, err
	}

	return hearts, nil
}

// Rollover migrates the daily buffer into the historical archive if the
// calendar day has advanced since the last transfer. It returns the
// number of migrated events; zero means the transfer already ran today.
func (s *Store) Rollover(ctx context.Context) (migrated int, err error) {
	defer func(start time.Time) { metrics.ObserveLedgerOp("rollover", start, err) }(time.Now())

	if err = ctx.Err(); err != nil {
		return 0, err
	}

	today := s.now().Format(dateLayout)

	err = s.update(func(txn *badger.Txn) error {
		var err error
		migrated, err = s.rolloverTxn(txn, today)
		return err
	})
	if err != nil {
		metrics.RolloverRuns.WithLabelValues("error").Inc()
		return 0, err
	}

	if migrated > 0 {
		metrics.RolloverRuns.WithLabelValues("transferred").Inc()
		metrics.RolloverMigratedEvents.Add(float64(migrated))
		s.logger.Info().
			Int("migrated", migrated).
			Str("date", today).
			Msg("daily ledger rolled over into archive")
	} else {
		metrics.RolloverRuns.WithLabelValues("noop").Inc()
	}

	return migrated, nil
}

// rolloverTxn performs the day-boundary transfer inside an open
// transaction. The archive append is written before the buffer reset so
// a failure partway leaves the daily buffer unchanged and a retry is safe.
func (s *Store) rolloverTxn(txn *badger.Txn, today string) (int, error) {
	daily, err := getDaily(txn, today)
	if err != nil {
		return 0, err
	}
	if daily.LastTransferDate == today {
		return 0, nil
	}

	archive, err := getArchive(txn)
	if err != nil {
		return 0, err
	}

	archive.VenueHearts = append(archive.VenueHearts, daily.VenueHearts...)
	archive.MenuItemHearts = append(archive.MenuItemHearts, daily.MenuItemHearts...)
	migrated := len(daily.VenueHearts) + len(daily.MenuItemHearts)

	if err := putJSON(txn, archiveKey, archive); err != nil {
		return 0, err
	}
	if err := putJSON(txn, dailyKey, &dailyDocument{LastTransferDate: today}); err != nil {
		return 0, err
	}

	return migrated, nil
}

// update runs fn in a read-modify-write transaction, retrying on
// optimistic-concurrency conflicts.
func (s *Store) update(fn func(txn *badger.Txn) error) error {
	if s.db.IsClosed() {
		return ErrStoreClosed
	}
	var err error
	for i := 0; i < conflictRetries; i++ {
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

// view runs fn in a read-only transaction.
func (s *Store) view(fn func(txn *badger.Txn) error) error {
	if s.db.IsClosed() {
		return ErrStoreClosed
	}
	return s.db.View(fn)
}

// validateSubject checks the identifier shape for a heart subject.
func validateSubject(userID string, kind Kind, venueID int, menuItemID string) error {
	if userID == "" {
		return ErrInvalidUserID
	}
	switch kind {
	case KindVenue:
		if venueID <= 0 {
			return ErrInvalidVenueID
		}
	case KindMenuItem:
		if menuItemID == "" {
			return ErrInvalidMenuItemID
		}
		if venueID <= 0 {
			return ErrInvalidVenueID
		}
	default:
		return fmt.Errorf("ledger: unknown heart kind %q", kind)
	}
	return nil
}

// removeMatching removes every event matching the subject. Used by unlike.
func removeMatching(events []HeartEvent, userID string, kind Kind, venueID int, menuItemID string) ([]HeartEvent, bool) {
	kept := events[:0]
	removed := false
	for _, ev := range events {
		if ev.matches(userID, kind, venueID, menuItemID) {
			removed = true
			continue
		}
		kept = append(kept, ev)
	}
	return kept, removed
}

// removeFirst removes the first event matching the subject. Used by
// explicit detailed removal.
func removeFirst(events []HeartEvent, userID string, kind Kind, venueID int, menuItemID string) ([]HeartEvent, bool) {
	for i, ev := range events {
		if ev.matches(userID, kind, venueID, menuItemID) {
			return append(events[:i], events[i+1:]...), true
		}
	}
	return events, false
}

// getDaily reads the daily buffer, defaulting to an empty buffer dated
// today when the document does not exist yet.
func getDaily(txn *badger.Txn, today string) (*dailyDocument, error) {
	doc := &dailyDocument{LastTransferDate: today}
	if err := getJSON(txn, dailyKey, doc); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return &dailyDocument{LastTransferDate: today}, nil
		}
		return nil, err
	}
	return doc, nil
}

// getArchive reads the historical archive, defaulting to empty.
func getArchive(txn *badger.Txn) (*archiveDocument, error) {
	doc := &archiveDocument{}
	if err := getJSON(txn, archiveKey, doc); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return &archiveDocument{}, nil
		}
		return nil, err
	}
	return doc, nil
}

func getJSON(txn *badger.Txn, key string, v interface{}) error {
	item, err := txn.Get([]byte(key))
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func putJSON(txn *badger.Txn, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set([]byte(key), data)
}
