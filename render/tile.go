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
	"github.com/mlnoga/plotraster/scaler"
)

// Splits the destination raster into independently renderable row bands of
// at most maxPixels samples each. Every band spans the full width; at least
// one row per band
func SplitTiles(dstNaxisn []int32, maxPixels int) []scaler.RectI {
	w, h:=int(dstNaxisn[0]), int(dstNaxisn[1])
	if w<=0 || h<=0 { return nil }
	rows:=1
	if w>0 && maxPixels>w { rows=maxPixels/w }
	if rows<1 { rows=1 }

	tiles:=make([]scaler.RectI, 0, (h+rows-1)/rows)
	for y:=0; y<h; y+=rows {
		y1:=y+rows
		if y1>h { y1=h }
		tiles=append(tiles, scaler.RectI{X0:0, Y0:y, X1:w, Y1:y1})
	}
	return tiles
}
