// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package recommend

import (
	"sort"

	"github.com/forkcast/forkcast/internal/ledger"
)

// weightEpsilon prevents division by zero at distance 0 and caps the
// influence of a perfect match.
const weightEpsilon = 0.1

// neighbor is a heart event paired with its distance from the target.
type neighbor struct {
	venueID  int
	distance float64
}

// Estimate produces a probability distribution over venue IDs using
// inverse-distance-weighted voting among the k closest heart events.
//
// Menu-item hearts vote for the venue that serves the item, so the
// label is always the event's venue ID. An empty event set yields an
// empty distribution, not an error. Neighbor ordering is stable, so
// ties at equal distance resolve to the earlier event and results are
// deterministic per input order.
func Estimate(target TimePoint, events []ledger.HeartEvent, k int) map[int]float64 {
	if len(events) == 0 || k <= 0 {
		return map[int]float64{}
	}

	neighbors := make([]neighbor, 0, len(events))
	for _, ev := range events {
		sample := TimePoint{Day: ev.DayOfWeek, Minute: ev.MinuteOfDay()}
		neighbors = append(neighbors, neighbor{
			venueID:  ev.VenueID,
			distance: Distance(target, sample),
		})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].distance < neighbors[j].distance
	})

	if k > len(neighbors) {
		k = len(neighbors)
	}
	neighbors = neighbors[:k]

	weights := make(map[int]float64, k)
	var total float64
	for _, n := range neighbors {
		w := 1 / (n.distance + weightEpsilon)
		weights[n.venueID] += w
		total += w
	}

	// Unreachable under the epsilon guard, but a zero total must never
	// become a division by zero.
	if total == 0 {
		return map[int]float64{}
	}

	probs := make(map[int]float64, len(weights))
	for venueID, w := range weights {
		probs[venueID] = w / total
	}
	return probs
}

// Fuse linearly combines two venue distributions with the given weights
// and renormalizes the result to sum to 1. An all-zero combination
// yields an empty distribution.
func Fuse(venueProbs, menuProbs map[int]float64, venueWeight, menuWeight float64) map[int]float64 {
	combined := make(map[int]float64, len(venueProbs)+len(menuProbs))
	for venueID, p := range venueProbs {
		combined[venueID] += venueWeight * p
	}
	for venueID, p := range menuProbs {
		combined[venueID] += menuWeight * p
	}

	var total float64
	for _, p := range combined {
		total += p
	}
	if total == 0 {
		return map[int]float64{}
	}

	for venueID := range combined {
		combined[venueID] /= total
	}
	return combined
}
