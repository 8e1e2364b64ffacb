// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

// Package ledger implements the durable preference ledger for heart events.
//
// The ledger is split into two logical documents persisted in BadgerDB:
//
//   - The daily buffer: the single mutable collection of hearts recorded
//     since the last day-boundary rollover, keyed by its last transfer date.
//   - The historical archive: the append-only accumulation of past hearts
//     that serves as training data for the recommendation engine.
//
// # Rollover
//
// Once per calendar-day transition, every event in the daily buffer is
// appended to the archive and the buffer is reset with its transfer date
// advanced to the new day. The transfer is idempotent per day: repeated
// invocations on the same day are no-ops. The archive append happens
// before the buffer clear inside a single transaction, so a failed
// rollover leaves the buffer unchanged and a retry is safe.
//
// # Concurrency
//
// Every mutation is a single Badger read-modify-write transaction.
// Badger's serializable snapshot isolation detects write conflicts
// between concurrent transactions; the store retries on ErrConflict, so
// racing likes for different users never lose writes. Rollover uses the
// same discipline and may race freely with mutations and with the lazy
// per-operation rollover check.
package ledger
