// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package recommend

import (
	"math"
	"testing"
)

func TestDistanceSymmetry(t *testing.T) {
	for d1 := 0; d1 <= 6; d1++ {
		for d2 := 0; d2 <= 6; d2++ {
			a := TimePoint{Day: d1, Minute: 600}
			b := TimePoint{Day: d2, Minute: 600}
			if Distance(a, b) != Distance(b, a) {
				t.Errorf("Distance(%v, %v) != Distance(%v, %v)", a, b, b, a)
			}
		}
	}
}

func TestDistanceDayWraparound(t *testing.T) {
	// Saturday to Sunday is one day apart, same as Sunday to Monday.
	satToSun := Distance(TimePoint{Day: 0, Minute: 0}, TimePoint{Day: 6, Minute: 0})
	sunToMon := Distance(TimePoint{Day: 0, Minute: 0}, TimePoint{Day: 1, Minute: 0})
	if satToSun != sunToMon {
		t.Errorf("wraparound day distance = %v, adjacent day distance = %v, want equal", satToSun, sunToMon)
	}
}

func TestDistanceTimeWraparound(t *testing.T) {
	// 23:50 to 00:10 is 20 minutes across midnight, not 1420.
	a := TimePoint{Day: 2, Minute: 23*60 + 50}
	b := TimePoint{Day: 2, Minute: 10}
	want := 20.0 / minutesPerDayUnit
	if got := Distance(a, b); math.Abs(got-want) > 1e-12 {
		t.Errorf("Distance across midnight = %v, want %v", got, want)
	}
}

func TestDistanceValues(t *testing.T) {
	tests := []struct {
		name string
		a, b TimePoint
		want float64
	}{
		{"identical points", TimePoint{3, 720}, TimePoint{3, 720}, 0},
		{"one day apart", TimePoint{1, 600}, TimePoint{2, 600}, 1},
		{"four hours apart", TimePoint{1, 600}, TimePoint{1, 840}, 1},
		{"one day and four hours", TimePoint{1, 600}, TimePoint{2, 840}, math.Sqrt2},
		{"maximal day distance", TimePoint{0, 0}, TimePoint{3, 0}, 3},
		{"maximal time distance", TimePoint{0, 0}, TimePoint{0, 720}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistanceNonNegativeAndTotal(t *testing.T) {
	points := []TimePoint{
		{0, 0}, {6, 1439}, {3, 720}, {1, 1}, {5, 239},
	}
	for _, a := range points {
		for _, b := range points {
			if d := Distance(a, b); d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
				t.Errorf("Distance(%v, %v) = %v, want finite non-negative", a, b, d)
			}
		}
	}
}
