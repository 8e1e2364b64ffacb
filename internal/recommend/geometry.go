// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package recommend

import "math"

const (
	daysPerWeek   = 7
	minutesPerDay = 1440

	// minutesPerDayUnit rescales the time axis so 4 hours of time
	// difference weighs the same as 1 day of day-of-week difference.
	minutesPerDayUnit = 240
)

// TimePoint is a position in the weekly cycle: a day of week (0 =
// Sunday) and a minute of day in [0, 1439].
type TimePoint struct {
	Day    int
	Minute int
}

// Distance returns the circular distance between two weekly time points.
//
// Both axes wrap: day difference is taken modulo 7 (max 3.5) and minute
// difference modulo 1440 (max 720, then rescaled). The result is the
// Euclidean norm of the two wrapped components. Pure and symmetric.
func Distance(a, b TimePoint) float64 {
	dayDiff := wrapDiff(a.Day, b.Day, daysPerWeek)
	timeDiff := wrapDiff(a.Minute, b.Minute, minutesPerDay) / minutesPerDayUnit

	return math.Sqrt(dayDiff*dayDiff + timeDiff*timeDiff)
}

// wrapDiff returns the shorter arc between two positions on a circle of
// the given period.
func wrapDiff(a, b, period int) float64 {
	d := a - b
	if d < 0 {
		d = -d
	}
	if period-d < d {
		d = period - d
	}
	return float64(d)
}
