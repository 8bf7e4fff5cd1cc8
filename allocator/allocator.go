// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

// Package allocator implements byte slice pooling management for the stack's
// block buffers, so that blocks freed on drain are recycled instead of
// discarded.
package allocator

import (
	"fmt"
	"math/bits"
	"sync"
)

const maxSizeClass = 63

var defaultAllocator = NewClassAllocator()

// Default returns the shared allocator used when a stack is created without
// an explicit one.
func Default() Allocator {
	return defaultAllocator
}

// Malloc gets a []byte from the default allocator. The second return param is
// used to Free.
func Malloc(size int) ([]byte, interface{}) {
	return defaultAllocator.Malloc(size)
}

// Free releases the bytes to the default allocator.
func Free(bts interface{}) {
	defaultAllocator.Free(bts)
}

// Allocator is the interface to Malloc or Free bytes.
type Allocator interface {
	// Malloc mallocs a []byte with specific size.
	// The second return value is the consequence for go's escape analysis.
	// See ClassAllocator and https://github.com/golang/go/issues/8618 for details.
	Malloc(int) ([]byte, interface{})
	// Free frees the allocated bytes. It accepts the second return value of Malloc.
	Free(interface{})
}

// NewClassAllocator creates a new ClassAllocator.
func NewClassAllocator() *ClassAllocator {
	var pools [maxSizeClass]*sync.Pool
	for i := range pools {
		size := 1 << i
		pools[i] = &sync.Pool{
			New: func() interface{} {
				return make([]byte, size)
			},
		}
	}
	return &ClassAllocator{pools: pools}
}

// ClassAllocator is a bytes pool. The size of bytes satisfies 1 << n.
type ClassAllocator struct {
	pools [maxSizeClass]*sync.Pool
}

// Malloc gets a []byte from pool. The second return param is used to Free.
// We may also use first return param to Free bytes, but this causes an
// additional heap allocation.
// See https://github.com/golang/go/issues/8618 for more details.
func (a *ClassAllocator) Malloc(size int) ([]byte, interface{}) {
	if size <= 0 {
		panic(fmt.Sprintf("invalid alloc size %d", size))
	}
	v := a.pools[sizeClass(size)].Get()
	return v.([]byte)[:size], v
}

// Free releases the bytes to pool.
func (a *ClassAllocator) Free(bts interface{}) {
	cap := cap(bts.([]byte))
	if cap == 0 {
		panic("free an empty bytes")
	}
	class := sizeClass(cap)
	if 1<<class != cap {
		panic(fmt.Sprintf("cap %d of bts must be power of two", cap))
	}
	a.pools[class].Put(bts)
}

// sizeClass returns the smallest n such that 1 << n >= size.
func sizeClass(size int) int {
	return bits.Len(uint(size - 1))
}
