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
	"fmt"
	"io"
	"github.com/mlnoga/plotraster/cmap"
	"github.com/mlnoga/plotraster/geom"
	"github.com/mlnoga/plotraster/scaler"
)

// Renders one destination tile into the shared value/no-data buffers
type tileFunc func(tile scaler.RectI, dst []float32, noData []bool) error

// Runs the tile jobs with the context's concurrency limit, then maps the
// resampled values through the LUT. Tiles are disjoint destination rects,
// so workers write to disjoint regions of the shared buffers.
// The returned pixel buffer comes from the pool; callers may recycle it
// with PutArrayOfUint32IntoPool once consumed
func renderTiles(c *Context, dstNaxisn []int32, lut *cmap.LUT, bg *uint32, job tileFunc) ([]uint32, error) {
	log:=c.Log
	if log==nil { log=io.Discard }

	n:=int(dstNaxisn[0])*int(dstNaxisn[1])
	dst   :=GetArrayOfFloat32FromPool(n)
	noData:=GetArrayOfBoolFromPool(n)
	defer PutArrayOfFloat32IntoPool(dst)
	defer PutArrayOfBoolIntoPool(noData)

	tiles:=SplitTiles(dstNaxisn, c.TilePixels)
	maxThreads:=c.MaxThreads
	if maxThreads<1 { maxThreads=1 }
	fmt.Fprintf(log, "Rendering %dx%d destination in %d tile(s) with %d thread(s)\n",
		dstNaxisn[0], dstNaxisn[1], len(tiles), maxThreads)

	pixels:=GetArrayOfUint32FromPool(n)
	limiter:=make(chan bool, maxThreads)
	errs   :=make(chan error, len(tiles))
	for _, tile:=range tiles {
		limiter <- true
		go func(tile scaler.RectI) {
			defer func() { <-limiter }()
			err:=job(tile, dst, noData)
			if err==nil {
				applyLUTRect(dst, noData, dstNaxisn, tile, lut, bg, pixels)
			}
			errs <- err
		}(tile)
	}
	for i:=0; i<cap(limiter); i++ { // wait for goroutines to finish
		limiter <- true
	}
	var err error
	for i:=0; i<len(tiles); i++ { // collect errors
		e:= <-errs
		if e!=nil {
			if err==nil {
				err=e
			} else {
				err=fmt.Errorf("%w; %s", err, e.Error())
			}
		}
	}
	if err!=nil {
		PutArrayOfUint32IntoPool(pixels)
		return nil, err
	}
	return pixels, nil
}

// Resamples the source through the transform and maps it through the LUT,
// producing packed 0xAARRGGBB pixels of shape dstNaxisn. The destination is
// chunked into tiles rendered concurrently per the context. See scaler.ScaleTr
// for the addressing semantics; bg is the no-data pixel, nil for transparent
func RenderTr(c *Context, src []float32, srcMask []bool, naxisn []int32,
	tr *geom.Transform2D, xs, ys []float64, dstNaxisn []int32,
	f scaler.Filter, lut *cmap.LUT, bg *uint32) ([]uint32, error) {

	return renderTiles(c, dstNaxisn, lut, bg, func(tile scaler.RectI, dst []float32, noData []bool) error {
		_, _, err:=scaler.ScaleTr(src, srcMask, naxisn, tr, xs, ys, dstNaxisn, tile, f, dst, noData)
		return err
	})
}

// Resamples the source rectangle onto the full destination raster and maps it
// through the LUT, producing packed 0xAARRGGBB pixels of shape dstNaxisn.
// See scaler.ScaleRect for the addressing semantics
func RenderRect(c *Context, src []float32, srcMask []bool, naxisn []int32,
	srcRect scaler.RectF, dstNaxisn []int32,
	f scaler.Filter, lut *cmap.LUT, bg *uint32) ([]uint32, error) {

	full:=scaler.FullRect(dstNaxisn)
	return renderTiles(c, dstNaxisn, lut, bg, func(tile scaler.RectI, dst []float32, noData []bool) error {
		// remap the tile through the full destination rect so every tile
		// sees the same source-to-destination scaling
		sx:=(srcRect.X1-srcRect.X0)/float64(full.X1-full.X0)
		sy:=(srcRect.Y1-srcRect.Y0)/float64(full.Y1-full.Y0)
		tileSrc:=scaler.RectF{
			X0: srcRect.X0+float64(tile.X0)*sx,
			Y0: srcRect.Y0+float64(tile.Y0)*sy,
			X1: srcRect.X0+float64(tile.X1)*sx,
			Y1: srcRect.Y0+float64(tile.Y1)*sy,
		}
		_, _, err:=scaler.ScaleRect(src, srcMask, naxisn, tileSrc, dstNaxisn, tile, f, dst, noData)
		return err
	})
}
