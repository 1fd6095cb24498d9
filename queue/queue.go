// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"iter"

	"github.com/ava-labs/hyperds/list"
)

// Placement reports where [Ordered.InsertAt] linked a value.
type Placement uint8

const (
	Front Placement = iota
	Middle
	Back
	// BackOverflow is returned when the requested position lies past the
	// end of the queue and the value was appended instead.
	BackOverflow
)

func (p Placement) String() string {
	switch p {
	case Front:
		return "front"
	case Middle:
		return "middle"
	case Back:
		return "back"
	case BackOverflow:
		return "back (position too far)"
	default:
		return "unknown"
	}
}

// Ordered is a sequence that can be extended at either end or at a
// 1-based position and drained from the front. None of its operations
// fail: out-of-range positions degrade to an append and removing from an
// empty queue reports false.
//
// Ordered is not safe for concurrent use.
type Ordered[T any] struct {
	l *list.List[T]
}

func New[T any]() *Ordered[T] {
	return &Ordered[T]{l: &list.List[T]{}}
}

func (q *Ordered[T]) Len() int {
	return q.l.Size()
}

func (q *Ordered[T]) InsertFront(v T) {
	q.l.PushFront(v)
}

func (q *Ordered[T]) InsertBack(v T) {
	q.l.PushBack(v)
}

// InsertAt links [v] so that it becomes the [pos]-th element (1-based).
//
// Positions <= 1 insert at the front. If the queue is shorter than
// pos-1 elements, [v] is appended and [BackOverflow] is returned.
func (q *Ordered[T]) InsertAt(v T, pos int) Placement {
	if pos <= 1 {
		q.InsertFront(v)
		return Front
	}

	prev, ok := q.l.First()
	for i := 1; ok && i < pos-1; i++ {
		prev, ok = q.l.Next(prev)
	}
	if !ok {
		q.InsertBack(v)
		return BackOverflow
	}
	if _, ok := q.l.Next(prev); !ok {
		q.InsertBack(v)
		return Back
	}
	q.l.InsertAfter(v, prev)
	return Middle
}

// RemoveFront unlinks the head and returns its value. It returns false if
// the queue is empty.
func (q *Ordered[T]) RemoveFront() (T, bool) {
	head, ok := q.l.First()
	if !ok {
		return *new(T), false
	}
	return q.l.Remove(head)
}

func (q *Ordered[T]) Front() (T, bool) {
	head, ok := q.l.First()
	if !ok {
		return *new(T), false
	}
	return q.l.Value(head)
}

func (q *Ordered[T]) Back() (T, bool) {
	tail, ok := q.l.Last()
	if !ok {
		return *new(T), false
	}
	return q.l.Value(tail)
}

// Forward yields the values from front to back.
func (q *Ordered[T]) Forward() iter.Seq[T] {
	return q.l.All()
}

// Backward yields the values from back to front.
func (q *Ordered[T]) Backward() iter.Seq[T] {
	return q.l.Backward()
}

func (q *Ordered[T]) Clear() {
	q.l.Clear()
}
