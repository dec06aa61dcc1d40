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


package geom

import (
	"errors"
	"fmt"
	"math"
	"gonum.org/v1/gonum/mat"
)

// Returned when transform parameters (or a raw matrix) cannot be inverted
var ErrSingularTransform = errors.New("singular transform")

// A 2D point in data coordinates
type Point2D struct {
	X float64
	Y float64
}

// An invertible 2D affine transform in homogeneous coordinates.
// Forward maps data coordinates to intrinsic pixel coordinates, inverse maps back.
// Both 3x3 matrices are always rebuilt together by NewTransform2D; there is no
// way to mutate one half alone.
type Transform2D struct {
	fwd *mat.Dense // 3x3 forward matrix
	inv *mat.Dense // 3x3 inverse matrix
}

// Transformation parameters of a movable image item: translation, rotation
// angle in radians, anisotropic scale factors and axis flips
type TransformParams struct {
	X0    float64 `json:"x0"`
	Y0    float64 `json:"y0"`
	Angle float64 `json:"angle"`
	SX    float64 `json:"sx"`
	SY    float64 `json:"sy"`
	HFlip bool    `json:"hflip"`
	VFlip bool    `json:"vflip"`
}

// Identity transformation parameters
func IdentityParams() TransformParams { return TransformParams{0,0,0, 1,1, false,false} }

// Translation matrix by (tx,ty)
func Translate(tx, ty float64) *mat.Dense {
	return mat.NewDense(3,3, []float64{1,0,tx, 0,1,ty, 0,0,1})
}

// Scaling matrix by (sx,sy) about the origin. Negative factors flip
func Scale(sx, sy float64) *mat.Dense {
	return mat.NewDense(3,3, []float64{sx,0,0, 0,sy,0, 0,0,1})
}

// Rotation matrix by alpha radians about the origin
func Rotate(alpha float64) *mat.Dense {
	cos, sin:=math.Cos(alpha), math.Sin(alpha)
	return mat.NewDense(3,3, []float64{cos,-sin,0, sin,cos,0, 0,0,1})
}

// Builds the forward/inverse transform pair for an image of shape naxisn
// (naxisn[0] is X, naxisn[1] is Y) and the given parameters.
// With c = (w/2+0.5, h/2+0.5), the half-pixel-centered footprint center,
// forward = translate(c) * scale(fx/sx, fy/sy) * rotate(-angle) * translate(-x0-c):
// rotation, scale and flips are conjugated about c, so identity parameters
// yield the identity mapping. Fails with ErrSingularTransform for zero scale
// factors or an otherwise non-invertible composition.
func NewTransform2D(naxisn []int32, p TransformParams) (*Transform2D, error) {
	if p.SX==0 || p.SY==0 {
		return nil, fmt.Errorf("%w: scale factors (%g,%g)", ErrSingularTransform, p.SX, p.SY)
	}
	w, h:=float64(naxisn[0]), float64(naxisn[1])
	a, b:=w/2.0+0.5, h/2.0+0.5
	xflip, yflip:=1.0, 1.0
	if p.HFlip { xflip=-1.0 }
	if p.VFlip { yflip=-1.0 }

	tr1 :=Translate(a, b)
	sc  :=Scale(xflip/p.SX, yflip/p.SY)
	rot :=Rotate(-p.Angle)
	tr2 :=Translate(-p.X0-a, -p.Y0-b)

	fwd:=mat.NewDense(3,3,nil)
	fwd.Mul(tr1, sc)
	fwd.Mul(fwd, rot)
	fwd.Mul(fwd, tr2)

	inv:=mat.NewDense(3,3,nil)
	if err:=inv.Inverse(fwd); err!=nil {
		return nil, fmt.Errorf("%w: %s", ErrSingularTransform, err.Error())
	}
	det:=mat.Det(fwd)
	if math.Abs(det)<1e-12 {
		return nil, fmt.Errorf("%w: determinant %g", ErrSingularTransform, det)
	}
	return &Transform2D{fwd:fwd, inv:inv}, nil
}

// Identity transform for an image of the given shape
func IdentityTransform2D(naxisn []int32) *Transform2D {
	t, err:=NewTransform2D(naxisn, IdentityParams())
	if err!=nil { panic(err) } // identity is always invertible
	return t
}

func applyMat(m *mat.Dense, p Point2D) Point2D {
	x:=m.At(0,0)*p.X + m.At(0,1)*p.Y + m.At(0,2)
	y:=m.At(1,0)*p.X + m.At(1,1)*p.Y + m.At(1,2)
	return Point2D{x, y}
}

// Maps a data-space point to intrinsic pixel coordinates
func (t *Transform2D) Apply(p Point2D) Point2D { return applyMat(t.fwd, p) }

// Maps intrinsic pixel coordinates back to data space
func (t *Transform2D) ApplyInverse(p Point2D) Point2D { return applyMat(t.inv, p) }

// The four intrinsic corner points of an image of the given shape
func Corners(naxisn []int32) []Point2D {
	w, h:=float64(naxisn[0]), float64(naxisn[1])
	return []Point2D{ {0,0}, {0,h}, {w,h}, {w,0} }
}

// Applies the inverse transform to the given intrinsic corner points and
// returns the enclosing axis-aligned data-space box as (xmin,ymin,xmax,ymax).
// Used to recompute an item's footprint after a rotate/scale/flip
func (t *Transform2D) BoundingBox(corners []Point2D) (xmin, ymin, xmax, ymax float64) {
	xmin, ymin= math.Inf(1),  math.Inf(1)
	xmax, ymax=math.Inf(-1), math.Inf(-1)
	for _, c:=range corners {
		p:=t.ApplyInverse(c)
		if p.X<xmin { xmin=p.X }
		if p.X>xmax { xmax=p.X }
		if p.Y<ymin { ymin=p.Y }
		if p.Y>ymax { ymax=p.Y }
	}
	return xmin, ymin, xmax, ymax
}
