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


package stats

import (
	"errors"
	"math"
	"testing"
)

func TestFullRange(t *testing.T) {
	data:=[]float32{3, -2, 7, 0.5}
	vmin, vmax, err:=FullRange(data, nil)
	if err!=nil { t.Fatal(err.Error()) }
	if vmin!=-2 || vmax!=7 { t.Errorf("range (%g,%g), expected (-2,7)", vmin, vmax) }
}

func TestFullRangeIgnoresMaskedAndNonFinite(t *testing.T) {
	nan:=float32(math.NaN())
	inf:=float32(math.Inf(1))
	data:=[]float32{nan, -100, 3, inf, 7, -inf}
	mask:=[]bool{false, true, false, false, false, false}
	vmin, vmax, err:=FullRange(data, mask)
	if err!=nil { t.Fatal(err.Error()) }
	if vmin!=3 || vmax!=7 { t.Errorf("range (%g,%g), expected (3,7)", vmin, vmax) }
}

func TestFullRangeEmpty(t *testing.T) {
	if _, _, err:=FullRange(nil, nil); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("empty data: expected ErrEmptyRange, got %v", err)
	}
	data:=[]float32{1, 2}
	mask:=[]bool{true, true}
	if _, _, err:=FullRange(data, mask); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("fully masked: expected ErrEmptyRange, got %v", err)
	}
	nans:=[]float32{float32(math.NaN()), float32(math.NaN())}
	if _, _, err:=FullRange(nans, nil); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("all NaN: expected ErrEmptyRange, got %v", err)
	}
}

// a fixed 5-bin histogram over [0,5] with mass 10,20,40,20,10
func fixedHistogram() HistogramRange {
	return HistogramRange{
		Edges:  []float32{0, 1, 2, 3, 4, 5},
		Counts: []int32{10, 20, 40, 20, 10},
	}
}

func TestPercentileTrim(t *testing.T) {
	h:=fixedHistogram()
	// 40 percent trim targets 20 samples per side: bin 0 (10) and bin 4 (10) go
	vmin, vmax:=PercentileTrim(h, 40)
	if vmin!=1 || vmax!=4 { t.Errorf("trim 40%%: (%g,%g), expected (1,4)", vmin, vmax) }

	// zero percent keeps the full edge range
	vmin, vmax=PercentileTrim(h, 0)
	if vmin!=0 || vmax!=5 { t.Errorf("trim 0%%: (%g,%g), expected (0,5)", vmin, vmax) }

	// full trim keeps only the heaviest central bin
	vmin, vmax=PercentileTrim(h, 100)
	if vmin!=2 || vmax!=3 { t.Errorf("trim 100%%: (%g,%g), expected (2,3)", vmin, vmax) }
}

func TestPercentileTrimCollapse(t *testing.T) {
	h:=HistogramRange{Edges:[]float32{0, 1, 2}, Counts:[]int32{50, 50}}
	// both bins fit the per-side budget; the lower side claims first and the
	// upper side empties the histogram
	vmin, vmax:=PercentileTrim(h, 100)
	if vmin!=vmax { t.Errorf("expected a collapsed range, got (%g,%g)", vmin, vmax) }
}

func TestNormalize(t *testing.T) {
	data:=[]float32{1, 2, 3}
	vmin, vmax, err:=Normalize(0.5, 2.5, data, nil)
	if err!=nil { t.Fatal(err.Error()) }
	if vmin!=0.5 || vmax!=2.5 { t.Errorf("valid range changed to (%g,%g)", vmin, vmax) }

	// collapsed input falls back to the full data range
	vmin, vmax, err=Normalize(7, 7, data, nil)
	if err!=nil { t.Fatal(err.Error()) }
	if vmin!=1 || vmax!=3 { t.Errorf("fallback gave (%g,%g), expected (1,3)", vmin, vmax) }

	// uniform data widens around the single value
	uniform:=[]float32{4, 4, 4}
	vmin, vmax, err=Normalize(4, 4, uniform, nil)
	if err!=nil { t.Fatal(err.Error()) }
	if vmin!=3.5 || vmax!=4.5 { t.Errorf("uniform data gave (%g,%g), expected (3.5,4.5)", vmin, vmax) }

	if _, _, err=Normalize(1, 1, nil, nil); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("empty data: expected ErrEmptyRange, got %v", err)
	}
}

func TestEstimateRange(t *testing.T) {
	data:=make([]float32, 100)
	for i:=range data { data[i]=float32(i) }

	vmin, vmax, err:=EstimateRange(data, nil, RangePolicy{Kind:RangeFull})
	if err!=nil { t.Fatal(err.Error()) }
	if vmin!=0 || vmax!=99 { t.Errorf("full: (%g,%g), expected (0,99)", vmin, vmax) }

	// 10 percent trim on uniform mass drops about 5 percent per side
	vmin, vmax, err=EstimateRange(data, nil, RangePolicy{Kind:RangePercentile, Percent:10, Bins:100})
	if err!=nil { t.Fatal(err.Error()) }
	if vmin<3 || vmin>7 || vmax<92 || vmax>96 {
		t.Errorf("percentile: (%g,%g), expected roughly (5,94)", vmin, vmax)
	}
	if vmin>=vmax { t.Errorf("percentile range not strictly ordered: (%g,%g)", vmin, vmax) }

	vmin, vmax, err=EstimateRange(data, nil, RangePolicy{Kind:RangePinMin, Bound:10})
	if err!=nil { t.Fatal(err.Error()) }
	if vmin!=10 || vmax!=99 { t.Errorf("pin min: (%g,%g), expected (10,99)", vmin, vmax) }

	vmin, vmax, err=EstimateRange(data, nil, RangePolicy{Kind:RangePinMax, Bound:50})
	if err!=nil { t.Fatal(err.Error()) }
	if vmin!=0 || vmax!=50 { t.Errorf("pin max: (%g,%g), expected (0,50)", vmin, vmax) }

	if _, _, err=EstimateRange(nil, nil, RangePolicy{Kind:RangeFull}); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("empty data: expected ErrEmptyRange, got %v", err)
	}
}
