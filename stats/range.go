// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package stats

import (
	"errors"
	"math"
)

// Returned when no unmasked finite samples exist
var ErrEmptyRange = errors.New("empty range")

// Display range estimation policies
type RangeKind int

const (
	RangeFull       RangeKind=iota // min/max of the unmasked finite samples
	RangePercentile                // trim Percent of the histogram mass, split between both ends
	RangePinMin                    // hold Bound as vmin, recompute vmax from the full range
	RangePinMax                    // hold Bound as vmax, recompute vmin from the full range
)

// A display range estimation policy. Percent and Bins apply to
// RangePercentile, Bound to RangePinMin/RangePinMax
type RangePolicy struct {
	Kind    RangeKind `json:"kind"`
	Percent float64   `json:"percent"`
	Bins    int       `json:"bins"`
	Bound   float32   `json:"bound"`
}

// Returns the minimum and maximum of the unmasked, finite samples.
// Fails with ErrEmptyRange if none exist
func FullRange(data []float32, mask []bool) (vmin, vmax float32, err error) {
	vmin, vmax=float32(math.Inf(1)), float32(math.Inf(-1))
	found:=false
	for i, d:=range data {
		if mask!=nil && mask[i] { continue }
		if math.IsNaN(float64(d)) || math.IsInf(float64(d), 0) { continue }
		if d<vmin { vmin=d }
		if d>vmax { vmax=d }
		found=true
	}
	if !found { return 0, 0, ErrEmptyRange }
	return vmin, vmax, nil
}

// Trims percent of the histogram mass, half from each end: bins are excluded
// inward from each end until the excluded fraction per side is as close as
// possible to percent/2 without exceeding it, the lower side taking precedence
// on ties. Returns bin edge values; a collapsed result signals the caller to
// fall back to the full range
func PercentileTrim(h HistogramRange, percent float64) (vmin, vmax float32) {
	counts:=h.Counts
	total:=int64(0)
	for _, c:=range counts { total+=int64(c) }
	target:=int64(percent/200.0*float64(total))

	lo, loSum:=0, int64(0)
	for lo<len(counts) && loSum+int64(counts[lo])<=target {
		loSum+=int64(counts[lo])
		lo++
	}
	hi, hiSum:=len(counts)-1, int64(0)
	// the lower side claims shared mass first
	for hi>=lo && hiSum+int64(counts[hi])<=target {
		hiSum+=int64(counts[hi])
		hi--
	}
	if lo>hi { // everything excluded, degenerate
		return h.Edges[0], h.Edges[0]
	}
	return h.Edges[lo], h.Edges[hi+1]
}

// Normalizes a range to strict vmin<vmax, falling back to the full unmasked
// range on collapse. A uniform image widens around its single value
func Normalize(vmin, vmax float32, data []float32, mask []bool) (float32, float32, error) {
	if vmin<vmax { return vmin, vmax, nil }
	vmin, vmax, err:=FullRange(data, mask)
	if err!=nil { return 0, 0, err }
	if vmin>=vmax {
		return vmin-0.5, vmin+0.5, nil
	}
	return vmin, vmax, nil
}

// Computes a display value range from the data and the given policy.
// All results are normalized to strict vmin<vmax
func EstimateRange(data []float32, mask []bool, p RangePolicy) (vmin, vmax float32, err error) {
	switch p.Kind {
	case RangePercentile:
		bins:=p.Bins
		if bins<1 { bins=256 }
		h, err:=NewHistogramRange(data, mask, bins)
		if err!=nil { return 0, 0, err }
		vmin, vmax=PercentileTrim(h, p.Percent)
	case RangePinMin:
		_, vmax, err=FullRange(data, mask)
		if err!=nil { return 0, 0, err }
		vmin=p.Bound
	case RangePinMax:
		vmin, _, err=FullRange(data, mask)
		if err!=nil { return 0, 0, err }
		vmax=p.Bound
	default:
		vmin, vmax, err=FullRange(data, mask)
		if err!=nil { return 0, 0, err }
	}
	return Normalize(vmin, vmax, data, mask)
}
