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
	"sort"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Returned for malformed stop or control point definitions
var ErrInvalidColormap = errors.New("invalid colormap")

// A color stop: normalized position in [0,1] plus an RGBA color.
// The alpha component travels with the stop but is overwritten by the
// alpha policy when a LUT is built
type Stop struct {
	Pos   float64
	Color colorful.Color
	Alpha float64
}

// A raw (position, hex color) pair, the serialized form of a stop
type HexStop struct {
	Pos   float64 `json:"pos"`
	Color string  `json:"color"`
}

// An ordered table of color stops defining a gradient. Value object:
// derived tables (discretized, inverted) are rebuilt, never mutated in place.
// Invariant: stop positions are unique and ascending, first is 0, last is 1
type Table struct {
	Name  string
	stops []Stop
}

// Number of stops in the table
func (t *Table) NumStops() int { return len(t.stops) }

// Returns the i-th stop
func (t *Table) StopAt(i int) Stop { return t.stops[i] }

// Builds a table from the given stops. Positions must be inside [0,1],
// unique and ascending; fails with ErrInvalidColormap otherwise.
// Missing boundary stops at 0 and 1 are synthesized by clamping the
// nearest stop's color
func FromStops(name string, stops []Stop) (*Table, error) {
	if len(stops)==0 {
		return nil, fmt.Errorf("%w: no stops", ErrInvalidColormap)
	}
	for i, s:=range stops {
		if s.Pos<0 || s.Pos>1 {
			return nil, fmt.Errorf("%w: stop %d position %g outside [0,1]", ErrInvalidColormap, i, s.Pos)
		}
		if i>0 && s.Pos<=stops[i-1].Pos {
			return nil, fmt.Errorf("%w: stop %d position %g not ascending", ErrInvalidColormap, i, s.Pos)
		}
	}
	ss:=append([]Stop(nil), stops...) // clone slice
	if ss[0].Pos>0 {
		first:=ss[0]
		first.Pos=0
		ss=append([]Stop{first}, ss...)
	}
	if ss[len(ss)-1].Pos<1 {
		last:=ss[len(ss)-1]
		last.Pos=1
		ss=append(ss, last)
	}
	return &Table{Name:name, stops:ss}, nil
}

// Builds a table from raw (position, "#RRGGBB") pairs
func FromHex(name string, pairs []HexStop) (*Table, error) {
	stops:=make([]Stop, len(pairs))
	for i, p:=range pairs {
		c, err:=colorful.Hex(p.Color)
		if err!=nil {
			return nil, fmt.Errorf("%w: stop %d color %q: %s", ErrInvalidColormap, i, p.Color, err.Error())
		}
		stops[i]=Stop{Pos:p.Pos, Color:c, Alpha:1}
	}
	return FromStops(name, stops)
}

// Samples a continuous color function at n evenly spaced positions.
// n must be at least 2
func FromFunction(name string, f func(t float64) (colorful.Color, float64), n int) (*Table, error) {
	if n<2 { return nil, fmt.Errorf("%w: %d samples", ErrInvalidColormap, n) }
	stops:=make([]Stop, n)
	for i:=0; i<n; i++ {
		t:=float64(i)/float64(n-1)
		c, a:=f(t)
		stops[i]=Stop{Pos:t, Color:c, Alpha:a}
	}
	return FromStops(name, stops)
}

// Offset separating the pre-step and post-step stop of a color band edge
const stepDelta=1e-9

// Returns a stepped copy of the table with one visually distinct band per
// stop, compressed to fit [0,1]. Each consecutive stop pair becomes two new
// stops at position*(n-1)/n, holding the previous color just before the step
// and the new color just after. A single-stop table is returned unchanged
func (t *Table) Discretize() *Table {
	n:=len(t.stops)
	if n<2 { return t }
	squeeze:=float64(n-1)/float64(n)
	ss:=make([]Stop, 0, 2*n)
	ss=append(ss, Stop{0, t.stops[0].Color, t.stops[0].Alpha})
	for i:=1; i<n; i++ {
		p:=t.stops[i].Pos*squeeze
		ss=append(ss, Stop{p-stepDelta, t.stops[i-1].Color, t.stops[i-1].Alpha})
		ss=append(ss, Stop{p,           t.stops[i].Color,   t.stops[i].Alpha})
	}
	last:=t.stops[n-1]
	ss=append(ss, Stop{1, last.Color, last.Alpha})
	return &Table{Name:t.Name, stops:ss}
}

// Returns a copy of the table with the stop order reversed
func (t *Table) Inverted() *Table {
	n:=len(t.stops)
	ss:=make([]Stop, n)
	for i, s:=range t.stops {
		ss[n-1-i]=Stop{1-s.Pos, s.Color, s.Alpha}
	}
	return &Table{Name:t.Name, stops:ss}
}

// Returns the interpolated color and alpha at the given normalized position.
// Binary search for the bracketing stops, then channel-wise linear blend.
// Out-of-range positions are clamped
func (t *Table) ColorAt(pos float64) (colorful.Color, float64) {
	ss:=t.stops
	if pos<=ss[0].Pos { return ss[0].Color, ss[0].Alpha }
	if pos>=ss[len(ss)-1].Pos {
		last:=ss[len(ss)-1]
		return last.Color, last.Alpha
	}
	hi:=sort.Search(len(ss), func(i int) bool { return ss[i].Pos>pos })
	lo:=hi-1
	f:=(pos-ss[lo].Pos)/(ss[hi].Pos-ss[lo].Pos)
	c:=ss[lo].Color.BlendRgb(ss[hi].Color, f)
	a:=ss[lo].Alpha + f*(ss[hi].Alpha-ss[lo].Alpha)
	return c, a
}
