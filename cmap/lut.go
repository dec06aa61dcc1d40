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


package cmap

import (
	"errors"
	"fmt"
)

// Default number of quantization levels in a LUT
const DefaultLUTSize=1024

// Returned when the requested value range is empty or the level count is below 2
var ErrDegenerateRange = errors.New("degenerate LUT range")

// A fixed lookup table of packed 0xAARRGGBB pixels over the value range
// [Min,Max]. Entry i corresponds to value Min + i*(Max-Min)/(Size-1).
// Rebuilt whenever colormap, alpha policy, range or size change; callers
// cache by (colormap name, policy, Min, Max, Size)
type LUT struct {
	Pixels []uint32
	Min    float32
	Max    float32
	Size   int
	scale  float32 // (Size-1)/(Max-Min), for ValueToIndex
}

func packARGB(r, g, b, a float64) uint32 {
	return channel(a)<<24 | channel(r)<<16 | channel(g)<<8 | channel(b)
}

func channel(v float64) uint32 {
	if v<=0 { return 0 }
	if v>=1 { return 255 }
	return uint32(255*v+0.5)
}

// Builds a LUT of the given size from a stop table and alpha policy over
// [vmin,vmax]. Alpha stored with each stop is overwritten by the policy.
// Fails with ErrDegenerateRange if vmin>=vmax or size<2
func BuildLUT(t *Table, p AlphaPolicy, vmin, vmax float32, size int) (*LUT, error) {
	if vmin>=vmax {
		return nil, fmt.Errorf("%w: [%g,%g]", ErrDegenerateRange, vmin, vmax)
	}
	if size<2 {
		return nil, fmt.Errorf("%w: %d levels", ErrDegenerateRange, size)
	}
	pixels:=make([]uint32, size)
	for i:=0; i<size; i++ {
		level:=float64(i)/float64(size-1)
		c, _:=t.ColorAt(level)
		pixels[i]=packARGB(c.R, c.G, c.B, AlphaAt(level, p))
	}
	return &LUT{
		Pixels: pixels,
		Min:    vmin,
		Max:    vmax,
		Size:   size,
		scale:  float32(size-1)/(vmax-vmin),
	}, nil
}

// Maps a sample value to its LUT index: clamp to [Min,Max], scale linearly
// to [0,Size-1], round half up. Monotonic non-decreasing
func (l *LUT) ValueToIndex(v float32) int {
	if !(v>l.Min) { return 0 } // also catches NaN
	if v>=l.Max { return l.Size-1 }
	i:=int(l.scale*(v-l.Min)+0.5)
	if i>l.Size-1 { i=l.Size-1 }
	return i
}

// Looks up the packed 0xAARRGGBB pixel for a sample value
func (l *LUT) PixelOf(v float32) uint32 { return l.Pixels[l.ValueToIndex(v)] }
