// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package chunkstack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// blockCaps returns the capacities of the chain from bottom to top.
func blockCaps[T any](s *Stack[T]) []int {
	var caps []int
	for b := s.top; b != nil; b = b.next {
		caps = append([]int{len(b.items)}, caps...)
	}
	return caps
}

func TestBlockGrowth(t *testing.T) {
	const n = 4
	st, err := New[int](n)
	require.NoError(t, err)

	// the first block covers the first n items.
	for i := 0; i < n; i++ {
		require.NoError(t, st.Push(i))
	}
	require.Equal(t, []int{4}, blockCaps(st))
	require.Equal(t, n, st.topCap)
	require.Equal(t, n, st.topIndex)

	// item n+1 allocates a second block of capacity 2n.
	require.NoError(t, st.Push(n))
	require.Equal(t, []int{4, 8}, blockCaps(st))
	require.Equal(t, 2*n, st.topCap)
	require.Equal(t, 1, st.topIndex)

	// filling through item n+2n keeps two blocks; one more adds a third of
	// capacity 3n.
	for i := n + 1; i < n+2*n; i++ {
		require.NoError(t, st.Push(i))
	}
	require.Equal(t, []int{4, 8}, blockCaps(st))
	require.NoError(t, st.Push(3*n))
	require.Equal(t, []int{4, 8, 12}, blockCaps(st))
	require.Equal(t, 3*n, st.topCap)
}

func TestBlockShrink(t *testing.T) {
	st, err := New[int](4)
	require.NoError(t, err)
	for i := 1; i <= 5; i++ {
		require.NoError(t, st.Push(i))
	}
	require.Equal(t, []int{4, 8}, blockCaps(st))

	// the first pop drains the second block but does not free it yet.
	v, err := st.Pop()
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.Equal(t, []int{4, 8}, blockCaps(st))
	require.Zero(t, st.topIndex)

	// the next pop frees the drained block before reading from the full one
	// beneath it.
	v, err = st.Pop()
	require.NoError(t, err)
	require.Equal(t, 4, v)
	require.Equal(t, []int{4}, blockCaps(st))
	require.Equal(t, 4, st.topCap)
	require.Equal(t, 3, st.topIndex)

	// the initial block survives draining the stack.
	for want := 3; want >= 1; want-- {
		v, err := st.Pop()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
	require.True(t, st.IsEmpty())
	require.Equal(t, []int{4}, blockCaps(st))
}

func TestPoppedSlotsAreZeroed(t *testing.T) {
	st, err := New[*int](2)
	require.NoError(t, err)
	v := 42
	require.NoError(t, st.Push(&v))
	p, err := st.Pop()
	require.NoError(t, err)
	require.Equal(t, &v, p)
	require.Nil(t, st.top.items[0])
}

func TestResetKeepsInitialBlock(t *testing.T) {
	st, err := New[int](2)
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		require.NoError(t, st.Push(i))
	}
	require.Equal(t, []int{2, 4, 6}, blockCaps(st))

	st.Reset()
	require.Equal(t, []int{2}, blockCaps(st))
	require.Equal(t, 2, st.topCap)
	require.Zero(t, st.topIndex)
	for _, item := range st.top.items {
		require.Zero(t, item)
	}
}
