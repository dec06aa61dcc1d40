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
)

// Name of the colormap Get falls back to when a lookup misses
const DefaultColormap="jet"

// A registry of named colormaps. Seed it once at startup and treat it as
// read-only afterwards; lookups from multiple goroutines are then safe.
// Deliberately an explicit object rather than process-wide state, so tests
// and embedding applications can hold independent registries
type Registry struct {
	m map[string]*Table
}

// Standard colormap control points, matplotlib segment-data style
var builtinSegments=map[string]SegmentData{
	"gray": {
		R: []ControlPoint{{0,0,0},{1,1,1}},
		G: []ControlPoint{{0,0,0},{1,1,1}},
		B: []ControlPoint{{0,0,0},{1,1,1}},
	},
	"jet": {
		R: []ControlPoint{{0,0,0},{0.35,0,0},{0.66,1,1},{0.89,1,1},{1,0.5,0.5}},
		G: []ControlPoint{{0,0,0},{0.125,0,0},{0.375,1,1},{0.64,1,1},{0.91,0,0},{1,0,0}},
		B: []ControlPoint{{0,0.5,0.5},{0.11,1,1},{0.34,1,1},{0.65,0,0},{1,0,0}},
	},
	"hot": {
		R: []ControlPoint{{0,0.0416,0.0416},{0.365079,1,1},{1,1,1}},
		G: []ControlPoint{{0,0,0},{0.365079,0,0},{0.746032,1,1},{1,1,1}},
		B: []ControlPoint{{0,0,0},{0.746032,0,0},{1,1,1}},
	},
	"cool": {
		R: []ControlPoint{{0,0,0},{1,1,1}},
		G: []ControlPoint{{0,1,1},{1,0,0}},
		B: []ControlPoint{{0,1,1},{1,1,1}},
	},
	"bwr": {
		R: []ControlPoint{{0,0,0},{0.5,1,1},{1,1,1}},
		G: []ControlPoint{{0,0,0},{0.5,1,1},{1,0,0}},
		B: []ControlPoint{{0,1,1},{0.5,1,1},{1,0,0}},
	},
}

// Creates a registry seeded with the builtin colormaps
func NewRegistry() *Registry {
	r:=&Registry{m:make(map[string]*Table, len(builtinSegments))}
	for name, seg:=range builtinSegments {
		t, err:=FromSegmented(name, seg)
		if err!=nil { panic(err) } // builtin definitions are well-formed
		r.m[name]=t
	}
	return r
}

// Adds a colormap under its own name, replacing any previous entry
func (r *Registry) Add(t *Table) error {
	if t==nil || t.Name=="" {
		return fmt.Errorf("%w: missing name", ErrInvalidColormap)
	}
	r.m[t.Name]=t
	return nil
}

// Looks up a colormap by name
func (r *Registry) Lookup(name string) (*Table, bool) {
	t, ok:=r.m[name]
	return t, ok
}

// Returns the colormap of the given name, or the default colormap if unknown
func (r *Registry) Get(name string) *Table {
	if t, ok:=r.m[name]; ok { return t }
	return r.m[DefaultColormap]
}

// Returns the sorted names of all registered colormaps
func (r *Registry) Names() []string {
	names:=make([]string, 0, len(r.m))
	for n:=range r.m { names=append(names, n) }
	sort.Strings(names)
	return names
}
