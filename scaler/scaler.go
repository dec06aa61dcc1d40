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
	"errors"
	"math"
)

// Returned when a source or destination rectangle has zero width or height
var ErrDegenerateRect = errors.New("degenerate rectangle")

// Interpolation modes
type Mode int

const (
	Nearest      Mode=iota // round to the nearest sample, clamp to bounds
	Linear                 // bilinear blend of the 4 enclosing samples
	AntiAliasing           // kernel convolution around the mapped position, for downsampling
)

func (m Mode) String() string {
	switch m {
	case Nearest:      return "nearest"
	case Linear:       return "linear"
	case AntiAliasing: return "antialiasing"
	}
	return "unknown"
}

// An interpolation filter. Kernel, KW and KH are only used by AntiAliasing
type Filter struct {
	Mode   Mode
	Kernel []float32 // row-major KH x KW weights
	KW, KH int
}

// Uniform box kernel filter of the given size for antialiased downsampling.
// Even sizes are grown by one to keep the kernel centered
func NewAAFilter(size int) Filter {
	if size<1 { size=1 }
	if size%2==0 { size++ }
	kernel:=make([]float32, size*size)
	for i:=range kernel { kernel[i]=1 }
	return Filter{Mode:AntiAliasing, Kernel:kernel, KW:size, KH:size}
}

// A rectangle in continuous coordinates
type RectF struct {
	X0, Y0, X1, Y1 float64
}

// A half-open index rectangle [X0,X1) x [Y0,Y1)
type RectI struct {
	X0, Y0, X1, Y1 int
}

// Full index rectangle of an image of the given shape
func FullRect(naxisn []int32) RectI { return RectI{0, 0, int(naxisn[0]), int(naxisn[1])} }

func (r RectI) clip(naxisn []int32) RectI {
	if r.X0<0 { r.X0=0 }
	if r.Y0<0 { r.Y0=0 }
	if r.X1>int(naxisn[0]) { r.X1=int(naxisn[0]) }
	if r.Y1>int(naxisn[1]) { r.Y1=int(naxisn[1]) }
	return r
}

func valid(v float32) bool {
	f:=float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Samples the source at continuous index coordinates (u,v), where sample
// (i,j) sits at (i,j) exactly. Returns the interpolated value and whether any
// valid source sample contributed. Positions more than half a sample outside
// the source footprint yield no data
func sample(src []float32, mask []bool, w, h int, u, v float64, f Filter) (float32, bool) {
	if u< -0.5 || u>float64(w)-0.5 || v< -0.5 || v>float64(h)-0.5 {
		return 0, false
	}
	switch f.Mode {
	case Linear:
		return sampleLinear(src, mask, w, h, u, v)
	case AntiAliasing:
		return sampleKernel(src, mask, w, h, u, v, f)
	}
	return sampleNearest(src, mask, w, h, u, v)
}

func sampleNearest(src []float32, mask []bool, w, h int, u, v float64) (float32, bool) {
	i:=clampi(int(math.Floor(u+0.5)), w-1)
	j:=clampi(int(math.Floor(v+0.5)), h-1)
	d:=src[j*w+i]
	if (mask!=nil && mask[j*w+i]) || !valid(d) { return 0, false }
	return d, true
}

func sampleLinear(src []float32, mask []bool, w, h int, u, v float64) (float32, bool) {
	i0:=int(math.Floor(u))
	j0:=int(math.Floor(v))
	fx:=float32(u-float64(i0))
	fy:=float32(v-float64(j0))

	// clamp neighbor indices to the edge, exclude masked samples and
	// renormalize the remaining weights
	ia, ib:=clampi(i0, w-1), clampi(i0+1, w-1)
	ja, jb:=clampi(j0, h-1), clampi(j0+1, h-1)

	idx    :=[4]int    {ja*w+ia,       ja*w+ib,   jb*w+ia, jb*w+ib}
	weights:=[4]float32{(1-fx)*(1-fy), fx*(1-fy), (1-fx)*fy, fx*fy}

	sum, wsum:=float32(0), float32(0)
	for k:=0; k<4; k++ {
		d:=src[idx[k]]
		if (mask!=nil && mask[idx[k]]) || !valid(d) { continue }
		sum +=weights[k]*d
		wsum+=weights[k]
	}
	if wsum<=0 { return 0, false }
	return sum/wsum, true
}

func sampleKernel(src []float32, mask []bool, w, h int, u, v float64, f Filter) (float32, bool) {
	ci:=int(math.Floor(u+0.5))
	cj:=int(math.Floor(v+0.5))
	rx, ry:=f.KW/2, f.KH/2

	sum, wsum:=float32(0), float32(0)
	for kj:=0; kj<f.KH; kj++ {
		j:=cj+kj-ry
		if j<0 || j>=h { continue }
		for ki:=0; ki<f.KW; ki++ {
			i:=ci+ki-rx
			if i<0 || i>=w { continue }
			d:=src[j*w+i]
			if (mask!=nil && mask[j*w+i]) || !valid(d) { continue }
			weight:=f.Kernel[kj*f.KW+ki]
			sum +=weight*d
			wsum+=weight
		}
	}
	if wsum<=0 { return 0, false }
	return sum/wsum, true
}

func clampi(i, max int) int {
	if i<0 { return 0 }
	if i>max { return max }
	return i
}

// Allocates the destination value and no-data buffers for the given shape
// unless the caller supplied correctly sized ones. A fresh no-data buffer
// starts all no-data; only the destination rectangle of a call is written,
// so tiled callers can share one buffer pair across calls
func prepareDst(dstNaxisn []int32, dst []float32, noData []bool) ([]float32, []bool) {
	n:=int(dstNaxisn[0])*int(dstNaxisn[1])
	if dst==nil || len(dst)!=n { dst=make([]float32, n) }
	if noData==nil || len(noData)!=n {
		noData=make([]bool, n)
		for i:=range noData { noData[i]=true }
	}
	return dst, noData
}
