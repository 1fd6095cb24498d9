// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package list

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	require := require.New(t)
	l := List[string]{}

	require.Zero(l.Size())
	_, ok := l.First()
	require.False(ok)
	_, ok = l.Last()
	require.False(ok)

	l.PushFront("foo")
	require.Equal(1, l.Size())
	require.Equal("foo", value(t, &l, first(t, &l)))

	l.PushFront("bar")
	require.Equal(2, l.Size())
	require.Equal("bar", value(t, &l, first(t, &l)))
	require.Equal("foo", value(t, &l, last(t, &l)))

	l.PushFront("baz")
	require.Equal(3, l.Size())

	// list is now (baz, bar, foo)
	head := first(t, &l)
	_, ok = l.Prev(head)
	require.False(ok)
	second, ok := l.Next(head)
	require.True(ok)
	require.Equal("bar", value(t, &l, second))
	third, ok := l.Next(second)
	require.True(ok)
	require.Equal("foo", value(t, &l, third))
	back, ok := l.Prev(second)
	require.True(ok)
	require.Equal(head, back)

	v, ok := l.Remove(head)
	require.True(ok)
	require.Equal("baz", v)
	require.Equal(2, l.Size())
	require.Equal("bar", value(t, &l, first(t, &l)))

	// stale refs are rejected
	_, ok = l.Remove(head)
	require.False(ok)
	_, ok = l.Value(head)
	require.False(ok)

	v, _ = l.Remove(first(t, &l))
	require.Equal("bar", v)
	v, _ = l.Remove(first(t, &l))
	require.Equal("foo", v)
	require.Zero(l.Size())
	_, ok = l.First()
	require.False(ok)
	_, ok = l.Last()
	require.False(ok)
}

func TestListInsertAfter(t *testing.T) {
	require := require.New(t)
	l := New[int](2)

	a := l.PushBack(1)
	c := l.PushBack(3)
	_, ok := l.InsertAfter(2, a)
	require.True(ok)
	require.Equal([]int{1, 2, 3}, l.Values())

	// inserting after the tail moves the tail
	d, ok := l.InsertAfter(4, c)
	require.True(ok)
	require.Equal(d, last(t, l))
	require.Equal([]int{1, 2, 3, 4}, l.Values())

	_, ok = l.InsertAfter(5, Ref(42))
	require.False(ok)
	require.Equal(4, l.Size())
}

func TestListReusesSlots(t *testing.T) {
	require := require.New(t)
	l := List[int]{}

	for i := 0; i < 4; i++ {
		l.PushBack(i)
	}
	for i := 0; i < 3; i++ {
		_, ok := l.Remove(first(t, &l))
		require.True(ok)
	}
	l.PushFront(10)
	l.PushBack(20)
	require.Len(l.elems, 4)
	require.Equal([]int{10, 3, 20}, l.Values())
	require.Equal([]int{20, 3, 10}, slices.Collect(l.Backward()))
}

func TestListClear(t *testing.T) {
	require := require.New(t)
	l := List[int]{}
	l.PushBack(1)
	l.PushBack(2)

	l.Clear()
	require.Zero(l.Size())
	require.Empty(l.Values())

	l.PushBack(7)
	require.Equal([]int{7}, l.Values())
	require.Equal(first(t, &l), last(t, &l))
}

func TestListLinkSymmetry(t *testing.T) {
	require := require.New(t)
	l := List[int]{}

	l.PushBack(1)
	l.PushFront(0)
	r := l.PushBack(3)
	l.PushFront(-1)
	prev, _ := l.Prev(r)
	l.InsertAfter(2, prev)

	forward := l.Values()
	backward := slices.Collect(l.Backward())
	slices.Reverse(backward)
	require.Equal(forward, backward)
	require.Equal([]int{-1, 0, 1, 2, 3}, forward)
}

func TestListStopIteration(t *testing.T) {
	require := require.New(t)
	l := List[int]{}
	for i := 0; i < 5; i++ {
		l.PushBack(i)
	}

	var seen []int
	for v := range l.All() {
		if v == 2 {
			break
		}
		seen = append(seen, v)
	}
	require.Equal([]int{0, 1}, seen)
}

func first[T any](t *testing.T, l *List[T]) Ref {
	t.Helper()
	r, ok := l.First()
	require.True(t, ok)
	return r
}

func last[T any](t *testing.T, l *List[T]) Ref {
	t.Helper()
	r, ok := l.Last()
	require.True(t, ok)
	return r
}

func value[T any](t *testing.T, l *List[T], r Ref) T {
	t.Helper()
	v, ok := l.Value(r)
	require.True(t, ok)
	return v
}
