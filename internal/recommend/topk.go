// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package recommend

import (
	"fmt"
	"sort"
)

// Recommendation is a single ranked venue suggestion.
type Recommendation struct {
	VenueID    int     `json:"venue_id"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// SelectTop extracts the count highest-probability venues from a
// distribution as ranked recommendations. Ordering is deterministic:
// probability descending, ties broken by ascending venue ID. The result
// holds min(count, len(probs)) entries and is never padded.
func SelectTop(probs map[int]float64, count int) []Recommendation {
	if count <= 0 || len(probs) == 0 {
		return []Recommendation{}
	}

	recs := make([]Recommendation, 0, len(probs))
	for venueID, p := range probs {
		recs = append(recs, Recommendation{
			VenueID:    venueID,
			Confidence: p,
			Reason:     fmt.Sprintf("%.1f%% match based on your time preferences", p*100),
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Confidence != recs[j].Confidence {
			return recs[i].Confidence > recs[j].Confidence
		}
		return recs[i].VenueID < recs[j].VenueID
	})

	if count < len(recs) {
		recs = recs[:count]
	}
	return recs
}
