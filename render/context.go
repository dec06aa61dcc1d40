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
	"io"
	"runtime"
	"github.com/pbnjay/memory"
)

// An execution context for rendering operations
type Context struct {
	Log        io.Writer
	MemoryMB   int `json:"memoryMB"`   // memory.TotalMemory()/1024/1024
	MaxThreads int `json:"maxThreads"` // concurrent tile workers
	TilePixels int `json:"tilePixels"` // destination samples per tile
}

// Destination samples per tile when memory probing yields nothing useful
const defaultTilePixels=1<<18

func NewContext(log io.Writer) *Context {
	memoryMB:=int(memory.TotalMemory()/1024/1024)
	tilePixels:=defaultTilePixels
	if memoryMB>0 && memoryMB<1024 {
		tilePixels=1<<16 // small machines get smaller tiles
	}
	return &Context{
		Log        : log,
		MemoryMB   : memoryMB,
		MaxThreads : runtime.GOMAXPROCS(0),
		TilePixels : tilePixels,
	}
}
