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
	"fmt"
	"math"
)

// Calculate histogram of the unmasked, finite samples between min and max
// into the given bins. Values outside [min,max] land in the edge bins
func Histogram(data []float32, mask []bool, min, max float32, bins []int32) {
	for i:=range bins {
		bins[i]=0
	}
	scale:=float32(len(bins))/(max-min)
	for i, d:=range data {
		if mask!=nil && mask[i] { continue }
		if math.IsNaN(float64(d)) || math.IsInf(float64(d), 0) { continue }
		index:=int((d-min)*scale)
		if index<0 { index=0 }
		if index>len(bins)-1 { index=len(bins)-1 }
		bins[index]++
	}
}

// A histogram over the unmasked, finite samples of an image:
// len(Edges) is len(Counts)+1, bin i covers [Edges[i], Edges[i+1])
type HistogramRange struct {
	Edges  []float32
	Counts []int32
}

// Builds an nbins histogram over the full unmasked range of the data.
// Fails with ErrEmptyRange if no unmasked finite samples exist
func NewHistogramRange(data []float32, mask []bool, nbins int) (h HistogramRange, err error) {
	if nbins<1 { return HistogramRange{}, fmt.Errorf("%w: %d bins", ErrEmptyRange, nbins) }
	min, max, err:=FullRange(data, mask)
	if err!=nil { return HistogramRange{}, err }
	if min==max { max=min+1 } // uniform data still gets one well-formed bin

	edges:=make([]float32, nbins+1)
	for i:=range edges {
		edges[i]=min + float32(i)*(max-min)/float32(nbins)
	}
	counts:=make([]int32, nbins)
	Histogram(data, mask, min, max, counts)
	return HistogramRange{Edges:edges, Counts:counts}, nil
}
