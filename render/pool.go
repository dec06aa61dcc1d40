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
	"runtime"
	"sync"
)

// Pools of constant sized destination buffers, to reduce allocation overhead
// during interactive re-rendering. A buffer must not be returned to the pool
// before the call it was issued for completes.

// Pool of constant sized arrays of given type, keyed by size
var poolFloat32=struct{
	sync.RWMutex
	m map[int]*sync.Pool
}{m: make(map[int]*sync.Pool)}

// Pool of constant sized arrays of given type, keyed by size
var poolBool=struct{
	sync.RWMutex
	m map[int]*sync.Pool
}{m: make(map[int]*sync.Pool)}

// Pool of constant sized arrays of given type, keyed by size
var poolUint32=struct{
	sync.RWMutex
	m map[int]*sync.Pool
}{m: make(map[int]*sync.Pool)}

// Returns a pool for []float32 arrays of the given size
func getSizedPoolFloat32(size int) *sync.Pool {
	poolFloat32.RLock()
	pool:=poolFloat32.m[size]
	poolFloat32.RUnlock()
	if pool==nil {
		pool=&sync.Pool{
			New: func() interface{} {
				return make([]float32, size)
			},
		}
		poolFloat32.Lock()
		poolFloat32.m[size]=pool
		poolFloat32.Unlock()
	}
	return pool
}

// Retrieves an array of given size and type from pool
func GetArrayOfFloat32FromPool(size int) []float32 {
	pool:=getSizedPoolFloat32(size)
	return pool.Get().([]float32)
}

// Returns an array of given size and type to the pool
func PutArrayOfFloat32IntoPool(arr []float32) {
	pool:=getSizedPoolFloat32(cap(arr))
	pool.Put(arr[:cap(arr)])
}

// Returns a pool for []bool arrays of the given size
func getSizedPoolBool(size int) *sync.Pool {
	poolBool.RLock()
	pool:=poolBool.m[size]
	poolBool.RUnlock()
	if pool==nil {
		pool=&sync.Pool{
			New: func() interface{} {
				return make([]bool, size)
			},
		}
		poolBool.Lock()
		poolBool.m[size]=pool
		poolBool.Unlock()
	}
	return pool
}

// Retrieves an array of given size and type from pool
func GetArrayOfBoolFromPool(size int) []bool {
	pool:=getSizedPoolBool(size)
	return pool.Get().([]bool)
}

// Returns an array of given size and type to the pool
func PutArrayOfBoolIntoPool(arr []bool) {
	pool:=getSizedPoolBool(cap(arr))
	pool.Put(arr[:cap(arr)])
}

// Returns a pool for []uint32 arrays of the given size
func getSizedPoolUint32(size int) *sync.Pool {
	poolUint32.RLock()
	pool:=poolUint32.m[size]
	poolUint32.RUnlock()
	if pool==nil {
		pool=&sync.Pool{
			New: func() interface{} {
				return make([]uint32, size)
			},
		}
		poolUint32.Lock()
		poolUint32.m[size]=pool
		poolUint32.Unlock()
	}
	return pool
}

// Retrieves an array of given size and type from pool
func GetArrayOfUint32FromPool(size int) []uint32 {
	pool:=getSizedPoolUint32(size)
	return pool.Get().([]uint32)
}

// Returns an array of given size and type to the pool
func PutArrayOfUint32IntoPool(arr []uint32) {
	pool:=getSizedPoolUint32(cap(arr))
	pool.Put(arr[:cap(arr)])
}

// Clears all memory pools and triggers garbage collection
func ClearPools() {
	poolFloat32=struct{
		sync.RWMutex
		m map[int]*sync.Pool
	}{m: make(map[int]*sync.Pool)}

	poolBool=struct{
		sync.RWMutex
		m map[int]*sync.Pool
	}{m: make(map[int]*sync.Pool)}

	poolUint32=struct{
		sync.RWMutex
		m map[int]*sync.Pool
	}{m: make(map[int]*sync.Pool)}

	runtime.GC()
}
