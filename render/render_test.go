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
	"errors"
	"io"
	"testing"
	"github.com/mlnoga/plotraster/cmap"
	"github.com/mlnoga/plotraster/geom"
	"github.com/mlnoga/plotraster/scaler"
)

func grayLUT(t *testing.T, vmin, vmax float32, size int) *cmap.LUT {
	tbl:=cmap.NewRegistry().Get("gray")
	lut, err:=cmap.BuildLUT(tbl, cmap.AlphaPolicy{Kind:cmap.AlphaNone}, vmin, vmax, size)
	if err!=nil { t.Fatal(err.Error()) }
	return lut
}

// a context with tiny tiles, to exercise the concurrent tile path
func testContext() *Context {
	return &Context{Log:io.Discard, MaxThreads:2, TilePixels:4}
}

func TestRenderRect(t *testing.T) {
	src:=[]float32{1, 2, 3, 4}
	naxisn:=[]int32{2, 2}
	dstNaxisn:=[]int32{4, 4}
	lut:=grayLUT(t, 1, 4, 4)

	pixels, err:=RenderRect(testContext(), src, nil, naxisn, scaler.RectF{X0: 0, Y0: 0, X1: 2, Y1: 2},
		dstNaxisn, scaler.Filter{Mode:scaler.Nearest}, lut, nil)
	if err!=nil { t.Fatal(err.Error()) }
	if len(pixels)!=16 { t.Fatalf("got %d pixels, expected 16", len(pixels)) }

	// nearest 2x upscale reproduces each source sample as a 2x2 block
	for dy:=0; dy<4; dy++ {
		for dx:=0; dx<4; dx++ {
			want:=lut.PixelOf(src[(dy/2)*2+(dx/2)])
			if got:=pixels[dy*4+dx]; got!=want {
				t.Errorf("pixel (%d,%d) is %08x, expected %08x", dx, dy, got, want)
			}
		}
	}
}

func TestRenderTr(t *testing.T) {
	naxisn:=[]int32{4, 4}
	src:=make([]float32, 16)
	for i:=range src { src[i]=float32(i+1) }
	xs:=[]float64{0.5, 1.5, 2.5, 3.5}
	ys:=[]float64{0.5, 1.5, 2.5, 3.5}
	tr:=geom.IdentityTransform2D(naxisn)
	lut:=grayLUT(t, 1, 16, cmap.DefaultLUTSize)

	pixels, err:=RenderTr(testContext(), src, nil, naxisn, tr, xs, ys,
		naxisn, scaler.Filter{Mode:scaler.Nearest}, lut, nil)
	if err!=nil { t.Fatal(err.Error()) }
	for i:=range src {
		if want:=lut.PixelOf(src[i]); pixels[i]!=want {
			t.Errorf("pixel %d is %08x, expected %08x", i, pixels[i], want)
		}
	}
}

func TestRenderTrBackground(t *testing.T) {
	naxisn:=[]int32{4, 4}
	src:=make([]float32, 16)
	for i:=range src { src[i]=float32(i+1) }
	// a pure translation by two samples leaves the first two rows and
	// columns without data
	tr, err:=geom.NewTransform2D(naxisn, geom.TransformParams{X0:-2.5, Y0:-2.5, SX:1, SY:1})
	if err!=nil { t.Fatal(err.Error()) }
	lut:=grayLUT(t, 1, 16, cmap.DefaultLUTSize)

	bg:=uint32(0xFF102030)
	pixels, err:=RenderTr(testContext(), src, nil, naxisn, tr, nil, nil,
		naxisn, scaler.Filter{Mode:scaler.Nearest}, lut, &bg)
	if err!=nil { t.Fatal(err.Error()) }
	if pixels[0]!=bg { t.Errorf("no-data pixel is %08x, expected background %08x", pixels[0], bg) }
	if want:=lut.PixelOf(src[0]); pixels[2*4+2]!=want {
		t.Errorf("shifted pixel is %08x, expected %08x", pixels[2*4+2], want)
	}
}

func TestRenderTrError(t *testing.T) {
	naxisn:=[]int32{4, 4}
	src:=make([]float32, 16)
	tr:=geom.IdentityTransform2D(naxisn)
	lut:=grayLUT(t, 0, 1, 16)

	_, err:=RenderTr(testContext(), src, nil, naxisn, tr, []float64{0, 1}, nil,
		naxisn, scaler.Filter{Mode:scaler.Nearest}, lut, nil)
	if !errors.Is(err, scaler.ErrDegenerateRect) {
		t.Errorf("bad coordinate array: expected ErrDegenerateRect, got %v", err)
	}
}
