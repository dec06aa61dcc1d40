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


package scaler

import (
	"fmt"
	"sort"
	"github.com/mlnoga/plotraster/geom"
)

// Converts a data-space coordinate into a continuous sample index using the
// ascending per-axis coordinate array: nearest-lower-index binary search,
// then linear placement between the bracketing samples. Coordinates beyond
// the array extrapolate off the nearest end, where the sampler's footprint
// test turns them into no-data
func indexOf(coords []float64, c float64) float64 {
	n:=len(coords)
	if n<2 { return c-coords[0] }
	lo:=sort.SearchFloat64s(coords, c)-1 // largest i with coords[i]<=c
	if lo<0 { lo=0 }
	if lo>n-2 { lo=n-2 }
	return float64(lo) + (c-coords[lo])/(coords[lo+1]-coords[lo])
}

// Resamples the source through a transform: each destination pixel center is
// mapped through the inverse of tr into data space, converted to source index
// coordinates via the explicit, possibly non-uniform per-axis coordinate
// arrays xs and ys, and interpolated per the filter. The forward direction of
// tr must map source data coordinates to destination pixel coordinates.
// Nil coordinate arrays mean identity, i.e. sample i sits at data coordinate i.
//
// dst and noData buffers are reused when correctly sized, else allocated.
// Only pixels inside dstRect are written
func ScaleTr(src []float32, srcMask []bool, naxisn []int32, tr *geom.Transform2D,
	xs, ys []float64, dstNaxisn []int32, dstRect RectI, f Filter,
	dst []float32, noData []bool) ([]float32, []bool, error) {

	if dstRect.X1<=dstRect.X0 || dstRect.Y1<=dstRect.Y0 {
		return nil, nil, fmt.Errorf("%w: destination %+v", ErrDegenerateRect, dstRect)
	}
	if xs!=nil && len(xs)!=int(naxisn[0]) {
		return nil, nil, fmt.Errorf("%w: x coordinate array length %d for width %d", ErrDegenerateRect, len(xs), naxisn[0])
	}
	if ys!=nil && len(ys)!=int(naxisn[1]) {
		return nil, nil, fmt.Errorf("%w: y coordinate array length %d for height %d", ErrDegenerateRect, len(ys), naxisn[1])
	}
	dst, noData=prepareDst(dstNaxisn, dst, noData)

	w, h:=int(naxisn[0]), int(naxisn[1])
	dw:=int(dstNaxisn[0])

	r:=dstRect.clip(dstNaxisn)
	for dy:=r.Y0; dy<r.Y1; dy++ {
		for dx:=r.X0; dx<r.X1; dx++ {
			p:=tr.ApplyInverse(geom.Point2D{X:float64(dx)+0.5, Y:float64(dy)+0.5})
			u, v:=p.X, p.Y
			if xs!=nil { u=indexOf(xs, u) }
			if ys!=nil { v=indexOf(ys, v) }
			d, ok:=sample(src, srcMask, w, h, u, v, f)
			dst[dy*dw+dx]=d
			noData[dy*dw+dx]=!ok
		}
	}
	return dst, noData, nil
}
