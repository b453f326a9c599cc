// SPDX-License-Identifier: MIT
// Package: victory/chartdata
//
// downsample.go — flicker-free point-count reduction for zoom/pan.
//
// The modulo filter is anchored to the global index of each point (local
// index plus the window's absolute offset into the full series), so the
// same absolute points are retained regardless of which window is
// currently visible. Anchoring to the local index instead would make the
// retained set shift as the window slides, which renders as flicker.

package chartdata

import "math"

// Downsample reduces an already-sorted window of a larger logical series
// to at most maxPoints records, keeping elements whose global index is a
// multiple of the stride k = 2^ceil(log2(len/maxPoints)). startingOffset
// is the window's absolute offset into the full series.
//
// No-op when the window already fits (or maxPoints is not positive). The
// retained count may fall below maxPoints; it never exceeds it.
//
// Complexity: O(n) time, O(n/k) space.
func Downsample(data []Datum, maxPoints int, startingOffset int) []Datum {
	if maxPoints <= 0 || len(data) <= maxPoints {
		return data
	}

	// Smallest power of two making the reduced count ≤ maxPoints.
	k := int(math.Pow(2, math.Ceil(math.Log2(float64(len(data))/float64(maxPoints)))))

	out := make([]Datum, 0, len(data)/k+1)
	for i, d := range data {
		if mod(i+startingOffset, k) == 0 {
			out = append(out, d)
		}
	}
	return out
}

// mod is the mathematical (always non-negative) modulo, so negative
// offsets cannot silently disable the filter.
func mod(a, k int) int {
	m := a % k
	if m < 0 {
		m += k
	}
	return m
}
