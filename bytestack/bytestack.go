// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

// Package bytestack provides the runtime-typed rendition of the chunked
// stack: items are opaque byte values of a fixed size chosen at construction
// time, copied in on Push and out on Pop. Callers never receive a reference
// into the stack's storage. Block buffers come from an allocator and a block
// drained by Pop is returned to it immediately.
package bytestack

import (
	"trpc.group/trpc-go/chunkstack/allocator"
	"trpc.group/trpc-go/chunkstack/errs"
)

// EqualFunc reports whether the query item a equals the stored item b. Both
// slices are exactly the stack's item size long and must not be mutated or
// retained.
type EqualFunc func(a, b []byte) bool

// Option modifies the options of a Stack.
type Option func(*options)

type options struct {
	alloc allocator.Allocator
}

// WithAllocator sets the allocator the stack obtains its block buffers from.
func WithAllocator(a allocator.Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}

// node owns one block buffer. next points at the block beneath it, toward
// older items; every block below the top is full.
type node struct {
	buf     []byte
	release interface{} // allocator ticket for buf
	next    *node
}

// Stack is a non-thread-safe LIFO container over fixed-size byte items.
// The zero value is not usable; create one with New.
type Stack struct {
	alloc       allocator.Allocator
	top         *node
	topIndex    int // index of the first free slot in the top block
	topCap      int // capacity of the top block in items
	itemSize    int
	initialSize int
	size        int
}

// New creates a stack of itemSize-byte items whose first block holds
// initialSize of them. Every further block is initialSize items larger than
// the one before it.
func New(initialSize, itemSize int, opts ...Option) (*Stack, error) {
	if initialSize <= 0 || itemSize <= 0 {
		return nil, errs.ErrInvalidSize
	}
	byteLen := initialSize * itemSize
	if byteLen/itemSize != initialSize {
		return nil, errs.ErrCapacityOverflow
	}
	o := &options{
		alloc: allocator.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	buf, release := o.alloc.Malloc(byteLen)
	return &Stack{
		alloc:       o.alloc,
		top:         &node{buf: buf, release: release},
		topCap:      initialSize,
		itemSize:    itemSize,
		initialSize: initialSize,
	}, nil
}

func (s *Stack) valid() error {
	if s == nil {
		return errs.ErrNilStack
	}
	if s.top == nil {
		return errs.ErrClosed
	}
	return nil
}

// ItemSize returns the fixed byte size of one item.
func (s *Stack) ItemSize() int {
	return s.itemSize
}

// Len returns the number of items on the stack.
func (s *Stack) Len() int {
	if s == nil || s.top == nil {
		return 0
	}
	return s.size
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack) IsEmpty() bool {
	if s == nil || s.top == nil {
		return true
	}
	return s.topIndex == 0 && s.top.next == nil
}

// Push copies item onto the top of the stack. len(item) must equal the
// stack's item size. When the top block is full, a new block initialSize
// items larger is allocated first.
func (s *Stack) Push(item []byte) error {
	if err := s.valid(); err != nil {
		return err
	}
	if len(item) != s.itemSize {
		return errs.ErrItemSize
	}
	if s.topIndex == s.topCap {
		newCap := s.topCap + s.initialSize
		if newCap <= s.topCap {
			return errs.ErrCapacityOverflow
		}
		byteLen := newCap * s.itemSize
		if byteLen/s.itemSize != newCap {
			return errs.ErrCapacityOverflow
		}
		buf, release := s.alloc.Malloc(byteLen)
		s.top = &node{
			buf:     buf,
			release: release,
			next:    s.top,
		}
		s.topCap = newCap
		s.topIndex = 0
	}
	copy(s.top.buf[s.topIndex*s.itemSize:], item)
	s.topIndex++
	s.size++
	return nil
}

// Pop copies the most recently pushed item into dst and removes it from the
// stack. len(dst) must equal the stack's item size. A top block drained by
// earlier pops is returned to the allocator before the read, so at most the
// first block is ever kept empty.
func (s *Stack) Pop(dst []byte) error {
	if err := s.valid(); err != nil {
		return err
	}
	if len(dst) != s.itemSize {
		return errs.ErrItemSize
	}
	if s.topIndex == 0 && s.top.next == nil {
		return errs.ErrPopEmpty
	}
	if s.topIndex == 0 {
		// The stack is not empty, so the block beneath the drained top is full.
		drained := s.top
		s.top = drained.next
		s.topCap -= s.initialSize
		s.topIndex = s.topCap
		s.alloc.Free(drained.release)
		drained.buf, drained.release, drained.next = nil, nil, nil
	}
	s.topIndex--
	copy(dst, s.top.buf[s.topIndex*s.itemSize:(s.topIndex+1)*s.itemSize])
	s.size--
	return nil
}

// Exists reports whether an item equal to item sits within the maxDepth most
// recently pushed items, scanning from the top of the stack downward.
// maxDepth < 0 scans the whole stack and maxDepth == 0 scans nothing.
// equal is called as equal(item, stored) and the scan stops at the first
// match.
func (s *Stack) Exists(item []byte, maxDepth int, equal EqualFunc) bool {
	if s == nil || s.top == nil {
		return false
	}
	i := s.topIndex - 1
	n := s.topCap
	for nd := s.top; nd != nil; nd = nd.next {
		for ; i >= 0; i-- {
			if maxDepth == 0 {
				return false
			}
			if maxDepth > 0 {
				maxDepth--
			}
			if equal(item, nd.buf[i*s.itemSize:(i+1)*s.itemSize]) {
				return true
			}
		}
		n -= s.initialSize
		i = n - 1
	}
	return false
}

// Close destroys the stack, returning every block buffer to the allocator.
// Any later call on the stack, including a second Close, reports
// errs.ErrClosed.
func (s *Stack) Close() error {
	if err := s.valid(); err != nil {
		return err
	}
	for nd := s.top; nd != nil; {
		next := nd.next
		s.alloc.Free(nd.release)
		nd.buf, nd.release, nd.next = nil, nil, nil
		nd = next
	}
	s.top = nil
	s.topIndex = 0
	s.topCap = 0
	s.size = 0
	return nil
}
