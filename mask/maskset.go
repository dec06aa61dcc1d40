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


package mask

// An append-only log of mask areas for one image item, with the derived
// boolean mask cached and invalidated on every log change. Not safe for
// concurrent mutation; treat as owned by a single item
type MaskSet struct {
	naxisn   []int32
	areas    []Area
	baseAll  bool   // value of a fresh base sample, true after MaskAll
	mask     []bool // cached derived mask
	dirty    bool
}

// Creates an all-unmasked mask set for an image of the given shape
func NewMaskSet(naxisn []int32) *MaskSet {
	return &MaskSet{
		naxisn: append([]int32(nil), naxisn...), // clone slice
		dirty:  true,
	}
}

// Appends an area to the log
func (s *MaskSet) AddArea(a Area) {
	s.areas=append(s.areas, a)
	s.dirty=true
}

// Returns a copy of the ordered area log, e.g. for persistence or undo
func (s *MaskSet) Areas() []Area { return append([]Area(nil), s.areas...) }

// Sets every sample masked and clears the area log
func (s *MaskSet) MaskAll() {
	s.areas=nil
	s.baseAll=true
	s.dirty=true
}

// Sets every sample unmasked and clears the area log
func (s *MaskSet) UnmaskAll() {
	s.areas=nil
	s.baseAll=false
	s.dirty=true
}

// Returns the derived boolean mask, rebuilding it if the log changed.
// The returned slice is the cache; treat it as read-only
func (s *MaskSet) Mask() []bool {
	if !s.dirty { return s.mask }
	n:=int(s.naxisn[0])*int(s.naxisn[1])
	if s.mask==nil || len(s.mask)!=n {
		s.mask=make([]bool, n)
	}
	for i:=range s.mask { s.mask[i]=s.baseAll }
	s.mask=ApplyAreas(s.naxisn, s.areas, s.mask)
	s.dirty=false
	return s.mask
}
