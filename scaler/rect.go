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
)

// Resamples the source rectangle srcRect (in continuous source index-edge
// coordinates, full image = (0,0,w,h)) onto the destination index rectangle
// dstRect of a raster of shape dstNaxisn. Masked source samples are excluded
// per the filter's interpolation rule; destination samples without any valid
// contribution are flagged in the returned no-data mask.
//
// dst and noData buffers are reused when correctly sized, else allocated.
// Only pixels inside dstRect are written. Fails with ErrDegenerateRect if
// either rectangle has zero width or height
func ScaleRect(src []float32, srcMask []bool, naxisn []int32, srcRect RectF,
	dstNaxisn []int32, dstRect RectI, f Filter,
	dst []float32, noData []bool) ([]float32, []bool, error) {

	if srcRect.X1==srcRect.X0 || srcRect.Y1==srcRect.Y0 {
		return nil, nil, fmt.Errorf("%w: source %+v", ErrDegenerateRect, srcRect)
	}
	if dstRect.X1<=dstRect.X0 || dstRect.Y1<=dstRect.Y0 {
		return nil, nil, fmt.Errorf("%w: destination %+v", ErrDegenerateRect, dstRect)
	}
	dst, noData=prepareDst(dstNaxisn, dst, noData)

	w, h:=int(naxisn[0]), int(naxisn[1])
	dw:=int(dstNaxisn[0])
	sx:=(srcRect.X1-srcRect.X0)/float64(dstRect.X1-dstRect.X0)
	sy:=(srcRect.Y1-srcRect.Y0)/float64(dstRect.Y1-dstRect.Y0)

	r:=dstRect.clip(dstNaxisn)
	for dy:=r.Y0; dy<r.Y1; dy++ {
		// -0.5 converts edge coordinates to sample index coordinates
		v:=srcRect.Y0 + (float64(dy-dstRect.Y0)+0.5)*sy - 0.5
		for dx:=r.X0; dx<r.X1; dx++ {
			u:=srcRect.X0 + (float64(dx-dstRect.X0)+0.5)*sx - 0.5
			d, ok:=sample(src, srcMask, w, h, u, v, f)
			dst[dy*dw+dx]=d
			noData[dy*dw+dx]=!ok
		}
	}
	return dst, noData, nil
}
