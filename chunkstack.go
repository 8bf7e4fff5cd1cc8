// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

// Package chunkstack provides a non-thread-safe LIFO container backed by a
// chain of fixed-capacity blocks whose capacities grow linearly: the first
// block holds initialSize items and every further block is initialSize items
// larger than the one before it. A block drained by Pop is released at once,
// so apart from the first block the stack never retains empty storage.
package chunkstack

import (
	"trpc.group/trpc-go/chunkstack/errs"
)

// EqualFunc reports whether the query item a equals the stored item b.
// It must not mutate either argument.
type EqualFunc[T any] func(a, b T) bool

// Stack is a non-thread-safe LIFO container over items of type T.
// The zero value is not usable; create one with New.
type Stack[T any] struct {
	top         *block[T]
	topIndex    int // index of the first free slot in the top block
	topCap      int // capacity of the top block
	initialSize int
	size        int
}

// block holds a contiguous run of items. next points at the block beneath it,
// toward older items; every block below the top is full.
type block[T any] struct {
	items []T
	next  *block[T]
}

// New creates a stack whose first block holds initialSize items.
func New[T any](initialSize int) (*Stack[T], error) {
	if initialSize <= 0 {
		return nil, errs.ErrInvalidSize
	}
	return &Stack[T]{
		top:         &block[T]{items: make([]T, initialSize)},
		topCap:      initialSize,
		initialSize: initialSize,
	}, nil
}

func (s *Stack[T]) valid() error {
	if s == nil {
		return errs.ErrNilStack
	}
	if s.top == nil {
		return errs.ErrClosed
	}
	return nil
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	if s == nil || s.top == nil {
		return 0
	}
	return s.size
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool {
	if s == nil || s.top == nil {
		return true
	}
	return s.topIndex == 0 && s.top.next == nil
}

// Push copies v onto the top of the stack. When the top block is full, a new
// block initialSize items larger is linked above it first.
func (s *Stack[T]) Push(v T) error {
	if err := s.valid(); err != nil {
		return err
	}
	if s.topIndex == s.topCap {
		newCap := s.topCap + s.initialSize
		if newCap <= s.topCap {
			return errs.ErrCapacityOverflow
		}
		s.top = &block[T]{
			items: make([]T, newCap),
			next:  s.top,
		}
		s.topCap = newCap
		s.topIndex = 0
	}
	s.top.items[s.topIndex] = v
	s.topIndex++
	s.size++
	return nil
}

// Pop removes and returns the most recently pushed item. A top block drained
// by earlier pops is unlinked before the read, so at most the first block is
// ever kept empty.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if err := s.valid(); err != nil {
		return zero, err
	}
	if s.topIndex == 0 && s.top.next == nil {
		return zero, errs.ErrPopEmpty
	}
	if s.topIndex == 0 {
		// The stack is not empty, so the block beneath the drained top is full.
		s.top = s.top.next
		s.topCap -= s.initialSize
		s.topIndex = s.topCap
	}
	s.topIndex--
	v := s.top.items[s.topIndex]
	s.top.items[s.topIndex] = zero
	s.size--
	return v, nil
}

// Exists reports whether an item equal to v sits within the maxDepth most
// recently pushed items, scanning from the top of the stack downward.
// maxDepth < 0 scans the whole stack and maxDepth == 0 scans nothing.
// equal is called as equal(v, stored) and the scan stops at the first match.
func (s *Stack[T]) Exists(v T, maxDepth int, equal EqualFunc[T]) bool {
	if s == nil || s.top == nil {
		return false
	}
	i := s.topIndex - 1
	for b := s.top; b != nil; b = b.next {
		for ; i >= 0; i-- {
			if maxDepth == 0 {
				return false
			}
			if maxDepth > 0 {
				maxDepth--
			}
			if equal(v, b.items[i]) {
				return true
			}
		}
		if b.next != nil {
			i = len(b.next.items) - 1
		}
	}
	return false
}

// Reset empties the stack, keeping only the first block allocated.
func (s *Stack[T]) Reset() {
	if s == nil || s.top == nil {
		return
	}
	occupied := s.topIndex
	for s.top.next != nil {
		s.top = s.top.next
		occupied = len(s.top.items)
	}
	var zero T
	for i := 0; i < occupied; i++ {
		s.top.items[i] = zero
	}
	s.topCap = s.initialSize
	s.topIndex = 0
	s.size = 0
}

// Close destroys the stack, releasing every block. Any later call on the
// stack, including a second Close, reports errs.ErrClosed.
func (s *Stack[T]) Close() error {
	if err := s.valid(); err != nil {
		return err
	}
	s.top = nil
	s.topIndex = 0
	s.topCap = 0
	s.size = 0
	return nil
}
