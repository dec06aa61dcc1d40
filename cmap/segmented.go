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
	"fmt"
	"sort"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// A per-channel control point: channel value just below and just above
// the position, allowing discontinuities
type ControlPoint struct {
	Pos   float64 `json:"pos"`
	Below float64 `json:"below"`
	Above float64 `json:"above"`
}

// Sorted control points for the three color channels
type SegmentData struct {
	R []ControlPoint `json:"r"`
	G []ControlPoint `json:"g"`
	B []ControlPoint `json:"b"`
}

func validateChannel(name string, pts []ControlPoint) error {
	if len(pts)<2 {
		return fmt.Errorf("%w: channel %s has %d control points", ErrInvalidColormap, name, len(pts))
	}
	if pts[0].Pos!=0 || pts[len(pts)-1].Pos!=1 {
		return fmt.Errorf("%w: channel %s does not span [0,1]", ErrInvalidColormap, name)
	}
	for i:=1; i<len(pts); i++ {
		if pts[i].Pos<=pts[i-1].Pos {
			return fmt.Errorf("%w: channel %s control point %d not ascending", ErrInvalidColormap, name, i)
		}
	}
	return nil
}

// Evaluates one channel at position p. Between bracketing points lo and hi
// the value runs linearly from lo.Above to hi.Below; exactly on an interior
// control point the post-step value applies
func channelAt(pts []ControlPoint, p float64) float64 {
	if p<=pts[0].Pos { return pts[0].Above }
	if p>=pts[len(pts)-1].Pos { return pts[len(pts)-1].Below }
	hi:=sort.Search(len(pts), func(i int) bool { return pts[i].Pos>p })
	lo:=hi-1
	if pts[lo].Pos==p { return pts[lo].Above }
	f:=(p-pts[lo].Pos)/(pts[hi].Pos-pts[lo].Pos)
	return pts[lo].Above + f*(pts[hi].Below-pts[lo].Above)
}

// Like channelAt, but exactly on an interior control point the pre-step
// value applies. Identical to channelAt everywhere else
func channelBelow(pts []ControlPoint, p float64) float64 {
	if p<=pts[0].Pos { return pts[0].Above }
	if p>=pts[len(pts)-1].Pos { return pts[len(pts)-1].Below }
	hi:=sort.Search(len(pts), func(i int) bool { return pts[i].Pos>p })
	lo:=hi-1
	if pts[lo].Pos==p { return pts[lo].Below }
	f:=(p-pts[lo].Pos)/(pts[hi].Pos-pts[lo].Pos)
	return pts[lo].Above + f*(pts[hi].Below-pts[lo].Above)
}

// Builds a table from per-channel control points, matplotlib segment-data
// style. Stops are placed at the union of all channel positions, each channel
// interpolated independently between its bracketing points. A discontinuous
// interior position (Below != Above on any channel) becomes a stop pair at
// p-stepDelta/p holding the pre- and post-step colors, preserving the step
func FromSegmented(name string, seg SegmentData) (*Table, error) {
	if err:=validateChannel("red",   seg.R); err!=nil { return nil, err }
	if err:=validateChannel("green", seg.G); err!=nil { return nil, err }
	if err:=validateChannel("blue",  seg.B); err!=nil { return nil, err }

	posSet:=map[float64]bool{}
	for _, ch:=range [][]ControlPoint{seg.R, seg.G, seg.B} {
		for _, pt:=range ch { posSet[pt.Pos]=true }
	}
	positions:=make([]float64, 0, len(posSet))
	for p:=range posSet { positions=append(positions, p) }
	sort.Float64s(positions)

	stops:=make([]Stop, 0, 2*len(positions))
	for _, p:=range positions {
		above:=colorful.Color{
			R: clamp01(channelAt(seg.R, p)),
			G: clamp01(channelAt(seg.G, p)),
			B: clamp01(channelAt(seg.B, p)),
		}
		below:=colorful.Color{
			R: clamp01(channelBelow(seg.R, p)),
			G: clamp01(channelBelow(seg.G, p)),
			B: clamp01(channelBelow(seg.B, p)),
		}
		if p>0 && p<1 && below!=above {
			stops=append(stops, Stop{Pos:p-stepDelta, Color:below, Alpha:1})
		}
		stops=append(stops, Stop{Pos:p, Color:above, Alpha:1})
	}
	return FromStops(name, stops)
}

func clamp01(v float64) float64 {
	if v<0 { return 0 }
	if v>1 { return 1 }
	return v
}
