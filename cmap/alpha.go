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
	"math"
)

// Alpha shaping function kind. All shapes are monotonic non-decreasing on [0,1]
type AlphaKind int

const (
	AlphaNone     AlphaKind=iota // fully opaque
	AlphaConstant                // constant alpha Value
	AlphaLinear                  // alpha equals the normalized level
	AlphaSigmoid                 // normalized logistic curve, 0 at level 0 and 1 at level 1
	AlphaTanh                    // normalized tanh curve, 0 at level 0 and 1 at level 1
	AlphaStep                    // fully transparent at level 0, opaque above
)

func (k AlphaKind) String() string {
	switch k {
	case AlphaNone:     return "none"
	case AlphaConstant: return "constant"
	case AlphaLinear:   return "linear"
	case AlphaSigmoid:  return "sigmoid"
	case AlphaTanh:     return "tanh"
	case AlphaStep:     return "step"
	}
	return "unknown"
}

// An alpha shaping policy. Value is only used by AlphaConstant
type AlphaPolicy struct {
	Kind  AlphaKind `json:"kind"`
	Value float64   `json:"value"`
}

// Steepness constants of the sigmoid and tanh alpha curves
const (
	sigmoidSteepness=10.0
	tanhSteepness   = 5.0
)

func logistic(x float64) float64 { return 1.0/(1.0+math.Exp(-x)) }

// Maps a normalized level t in [0,1] to an alpha value under the given policy.
// Out-of-range levels are clamped. Pure and monotonic non-decreasing in t
func AlphaAt(t float64, p AlphaPolicy) float64 {
	if t<0 { t=0 }
	if t>1 { t=1 }
	switch p.Kind {
	case AlphaConstant:
		return p.Value
	case AlphaLinear:
		return t
	case AlphaSigmoid:
		// rescaled so the curve hits exactly 0 and 1 at the extremes
		lo:=logistic(-0.5*sigmoidSteepness)
		hi:=logistic( 0.5*sigmoidSteepness)
		return (logistic(sigmoidSteepness*(t-0.5))-lo)/(hi-lo)
	case AlphaTanh:
		return math.Tanh(tanhSteepness*t)/math.Tanh(tanhSteepness)
	case AlphaStep:
		if t>0 { return 1 }
		return 0
	}
	return 1 // AlphaNone
}
