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


package mask

import (
	"math"
)

// Mask area geometries
const (
	Rectangular="rectangular"
	Circular   ="circular"   // circle inscribed in the bounding rectangle
)

// A declarative mask area in data coordinates. Areas are recorded in
// application order; replaying the ordered list onto a fresh base mask
// reproduces the same mask
type Area struct {
	Geometry string  `json:"geometry"`
	X0       float64 `json:"x0"`
	Y0       float64 `json:"y0"`
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	Inside   bool    `json:"inside"`
}

// Converts a data-space rectangle to the nearest enclosing index range
// [ix0,ix1)x[iy0,iy1): floor for the top-left corner, ceil for the bottom-right,
// reversed bounds swapped, clamped to the image, and never empty (grown to 1x1)
func closestIndexRect(naxisn []int32, x0, y0, x1, y1 float64) (ix0, iy0, ix1, iy1 int) {
	w, h:=int(naxisn[0]), int(naxisn[1])
	ix0, iy0=clampIndex(int(math.Floor(x0)), w-1), clampIndex(int(math.Floor(y0)), h-1)
	ix1, iy1=clampIndex(int(math.Ceil(x1)),  w  ), clampIndex(int(math.Ceil(y1)),  h  )
	if ix0>ix1 { ix0, ix1 = ix1, ix0 }
	if iy0>iy1 { iy0, iy1 = iy1, iy0 }
	if ix0==ix1 { ix1++ }
	if iy0==iy1 { iy1++ }
	return ix0, iy0, ix1, iy1
}

func clampIndex(i, max int) int {
	if i<0 { return 0 }
	if i>max { return max }
	return i
}

func maskRectangular(m []bool, naxisn []int32, a Area) {
	w:=int(naxisn[0])
	ix0, iy0, ix1, iy1:=closestIndexRect(naxisn, a.X0, a.Y0, a.X1, a.Y1)
	if a.Inside {
		for iy:=iy0; iy<iy1; iy++ {
			row:=m[iy*w : (iy+1)*w]
			for ix:=ix0; ix<ix1; ix++ { row[ix]=true }
		}
		return
	}
	for iy:=0; iy<int(naxisn[1]); iy++ {
		row:=m[iy*w : (iy+1)*w]
		for ix:=0; ix<w; ix++ {
			if iy<iy0 || iy>=iy1 || ix<ix0 || ix>=ix1 { row[ix]=true }
		}
	}
}

func maskCircular(m []bool, naxisn []int32, a Area) {
	w:=int(naxisn[0])
	ix0, iy0, ix1, iy1:=closestIndexRect(naxisn, a.X0, a.Y0, a.X1, a.Y1)
	xc, yc:=0.5*(a.X0+a.X1), 0.5*(a.Y0+a.Y1)
	radius:=0.5*(a.X1-a.X0)
	for iy:=iy0; iy<iy1; iy++ {
		dy:=float64(iy)-yc
		row:=m[iy*w : (iy+1)*w]
		for ix:=ix0; ix<ix1; ix++ {
			dx:=float64(ix)-xc
			distance:=math.Sqrt(dx*dx+dy*dy)
			if a.Inside {
				if distance<=radius { row[ix]=true }
			} else if distance>radius {
				row[ix]=true
			}
		}
	}
	if !a.Inside {
		// the complement outside the bounding rectangle is masked unconditionally.
		// Kept in this two-step form to match the historical behavior at the
		// rectangle boundary, which differs from a pure distance test
		maskRectangular(m, naxisn, Area{Rectangular, a.X0, a.Y0, a.X1, a.Y1, false})
	}
}

// Folds the ordered area list onto the base mask for an image of shape naxisn
// (naxisn[0] is X, naxisn[1] is Y) and returns it. The base is edited in place,
// or freshly allocated all-unmasked when nil. Deterministic and idempotent:
// replaying the same list onto a fresh base always yields the same mask
func ApplyAreas(naxisn []int32, areas []Area, base []bool) []bool {
	if base==nil { base=make([]bool, int(naxisn[0])*int(naxisn[1])) }
	for _, a:=range areas {
		if a.Geometry==Rectangular {
			maskRectangular(base, naxisn, a)
		} else {
			maskCircular(base, naxisn, a)
		}
	}
	return base
}
