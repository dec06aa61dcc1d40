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


package render

import (
	"github.com/mlnoga/plotraster/cmap"
	"github.com/mlnoga/plotraster/scaler"
)

// Maps resampled destination values to packed 0xAARRGGBB pixels through the
// LUT. No-data samples take the background pixel, or fully transparent when
// bg is nil; they are values to render distinctly, not errors. The pixel
// buffer is reused when correctly sized, else allocated
func ApplyLUT(values []float32, noData []bool, lut *cmap.LUT, bg *uint32, pixels []uint32) []uint32 {
	if pixels==nil || len(pixels)!=len(values) {
		pixels=make([]uint32, len(values))
	}
	bgPixel:=uint32(0) // transparent
	if bg!=nil { bgPixel=*bg }
	for i, v:=range values {
		if noData!=nil && noData[i] {
			pixels[i]=bgPixel
			continue
		}
		pixels[i]=lut.PixelOf(v)
	}
	return pixels
}

// Like ApplyLUT, restricted to one destination rectangle, for tiled runs
func applyLUTRect(values []float32, noData []bool, dstNaxisn []int32, r scaler.RectI,
	lut *cmap.LUT, bg *uint32, pixels []uint32) {
	dw:=int(dstNaxisn[0])
	bgPixel:=uint32(0)
	if bg!=nil { bgPixel=*bg }
	for dy:=r.Y0; dy<r.Y1; dy++ {
		for dx:=r.X0; dx<r.X1; dx++ {
			i:=dy*dw+dx
			if noData[i] {
				pixels[i]=bgPixel
			} else {
				pixels[i]=lut.PixelOf(values[i])
			}
		}
	}
}
