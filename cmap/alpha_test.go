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
	"testing"
)

func TestAlphaEndpoints(t *testing.T) {
	cases:=[]struct {
		p      AlphaPolicy
		at0    float64
		at1    float64
	}{
		{AlphaPolicy{Kind:AlphaNone},                1,   1},
		{AlphaPolicy{Kind:AlphaConstant, Value:0.3}, 0.3, 0.3},
		{AlphaPolicy{Kind:AlphaLinear},              0,   1},
		{AlphaPolicy{Kind:AlphaSigmoid},             0,   1},
		{AlphaPolicy{Kind:AlphaTanh},                0,   1},
		{AlphaPolicy{Kind:AlphaStep},                0,   1},
	}
	for _, c:=range cases {
		if got:=AlphaAt(0, c.p); math.Abs(got-c.at0)>1e-12 {
			t.Errorf("%s: AlphaAt(0)=%g, expected %g", c.p.Kind.String(), got, c.at0)
		}
		if got:=AlphaAt(1, c.p); math.Abs(got-c.at1)>1e-12 {
			t.Errorf("%s: AlphaAt(1)=%g, expected %g", c.p.Kind.String(), got, c.at1)
		}
	}
}

func TestAlphaMonotonic(t *testing.T) {
	kinds:=[]AlphaKind{AlphaNone, AlphaConstant, AlphaLinear, AlphaSigmoid, AlphaTanh, AlphaStep}
	for _, k:=range kinds {
		p:=AlphaPolicy{Kind:k, Value:0.5}
		prev:=AlphaAt(0, p)
		for i:=1; i<=1000; i++ {
			cur:=AlphaAt(float64(i)/1000.0, p)
			if cur<prev {
				t.Errorf("%s: alpha decreases at level %g: %g < %g", k.String(), float64(i)/1000.0, cur, prev)
				break
			}
			prev=cur
		}
	}
}

func TestAlphaClamp(t *testing.T) {
	p:=AlphaPolicy{Kind:AlphaLinear}
	if got:=AlphaAt(-2, p); got!=0 { t.Errorf("AlphaAt(-2)=%g, expected 0", got) }
	if got:=AlphaAt(3, p); got!=1 { t.Errorf("AlphaAt(3)=%g, expected 1", got) }
}

func TestAlphaStepEdge(t *testing.T) {
	p:=AlphaPolicy{Kind:AlphaStep}
	if got:=AlphaAt(0, p); got!=0 { t.Errorf("step at 0 gave %g, expected 0", got) }
	if got:=AlphaAt(1e-9, p); got!=1 { t.Errorf("step just above 0 gave %g, expected 1", got) }
}
