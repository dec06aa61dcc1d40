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
	"testing"
)

func TestRegistryBuiltins(t *testing.T) {
	r:=NewRegistry()
	want:=[]string{"bwr", "cool", "gray", "hot", "jet"}
	names:=r.Names()
	if len(names)!=len(want) { t.Fatalf("registry names %v, expected %v", names, want) }
	for i, n:=range want {
		if names[i]!=n { t.Errorf("registry name %d is %q, expected %q", i, names[i], n) }
	}
	for _, n:=range want {
		tbl, ok:=r.Lookup(n)
		if !ok || tbl==nil || tbl.Name!=n {
			t.Errorf("builtin %q missing or misnamed", n)
		}
	}
}

func TestRegistryGetFallback(t *testing.T) {
	r:=NewRegistry()
	def, _:=r.Lookup(DefaultColormap)
	if got:=r.Get("no-such-map"); got!=def {
		t.Errorf("unknown name did not fall back to %q", DefaultColormap)
	}
	if got:=r.Get("gray"); got.Name!="gray" {
		t.Errorf("Get(gray) returned %q", got.Name)
	}
}

func TestRegistryAdd(t *testing.T) {
	r:=NewRegistry()
	tbl, err:=FromHex("custom", []HexStop{{0, "#000000"}, {1, "#FF00FF"}})
	if err!=nil { t.Fatal(err.Error()) }
	if err:=r.Add(tbl); err!=nil { t.Fatal(err.Error()) }
	if got, ok:=r.Lookup("custom"); !ok || got!=tbl {
		t.Errorf("added colormap not found")
	}
	if err:=r.Add(nil); !errors.Is(err, ErrInvalidColormap) {
		t.Errorf("Add(nil): expected ErrInvalidColormap, got %v", err)
	}
}
