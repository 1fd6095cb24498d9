// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package list

import (
	"iter"
	"slices"
)

// Ref addresses an element of a [List]. A Ref stays valid until the element
// it points at is removed; afterwards the slot may be handed out again.
//
// The zero Ref never addresses an element.
type Ref int

const none Ref = 0

// List implements a double-linked list. It offers similar functionality
// as container/list but uses generics and stores its elements in an
// arena addressed by [Ref] instead of linking heap-allocated nodes.
//
// The zero value is an empty list ready to use.
//
// This data structure does not perform any synchronization and is not
// safe to use concurrently without external locking.
type List[T any] struct {
	elems []element[T]
	free  []Ref

	head Ref
	tail Ref
	size int
}

type element[T any] struct {
	prev Ref
	next Ref
	live bool

	value T
}

// New returns a list with room for [capacity] elements before the arena
// has to grow.
func New[T any](capacity int) *List[T] {
	return &List[T]{elems: make([]element[T], 0, capacity)}
}

func (l *List[T]) Size() int {
	return l.size
}

// First returns the head of the list and false if the list is empty.
func (l *List[T]) First() (Ref, bool) {
	return l.head, l.head != none
}

// Last returns the tail of the list and false if the list is empty.
func (l *List[T]) Last() (Ref, bool) {
	return l.tail, l.tail != none
}

// Next returns the element following [r], if any.
func (l *List[T]) Next(r Ref) (Ref, bool) {
	if !l.valid(r) {
		return none, false
	}
	n := l.at(r).next
	return n, n != none
}

// Prev returns the element preceding [r], if any.
func (l *List[T]) Prev(r Ref) (Ref, bool) {
	if !l.valid(r) {
		return none, false
	}
	p := l.at(r).prev
	return p, p != none
}

// Value returns the value stored at [r] and false if [r] does not address
// a live element.
func (l *List[T]) Value(r Ref) (T, bool) {
	if !l.valid(r) {
		return *new(T), false
	}
	return l.at(r).value, true
}

func (l *List[T]) PushFront(v T) Ref {
	r := l.alloc(v)
	e := l.at(r)
	e.next = l.head
	if l.head != none {
		l.at(l.head).prev = r
	} else {
		l.tail = r
	}
	l.head = r
	l.size++
	return r
}

func (l *List[T]) PushBack(v T) Ref {
	r := l.alloc(v)
	e := l.at(r)
	e.prev = l.tail
	if l.tail != none {
		l.at(l.tail).next = r
	} else {
		l.head = r
	}
	l.tail = r
	l.size++
	return r
}

// InsertAfter links [v] directly behind [at]. If [at] is the tail, this is
// the same as [List.PushBack]. It returns false (and inserts nothing) if
// [at] does not address a live element.
func (l *List[T]) InsertAfter(v T, at Ref) (Ref, bool) {
	if !l.valid(at) {
		return none, false
	}
	next := l.at(at).next
	if next == none {
		return l.PushBack(v), true
	}

	// [alloc] may grow the arena, so element pointers are taken afterwards.
	r := l.alloc(v)
	e := l.at(r)
	e.prev = at
	e.next = next
	l.at(at).next = r
	l.at(next).prev = r
	l.size++
	return r, true
}

// Remove unlinks [r] and returns its value. It returns false if [r] does
// not address a live element.
func (l *List[T]) Remove(r Ref) (T, bool) {
	if !l.valid(r) {
		return *new(T), false
	}
	e := l.at(r)
	if e.prev != none {
		l.at(e.prev).next = e.next
	} else {
		l.head = e.next
	}
	if e.next != none {
		l.at(e.next).prev = e.prev
	} else {
		l.tail = e.prev
	}
	l.size--
	return l.release(r), true
}

// Clear drops every element but keeps the arena capacity.
func (l *List[T]) Clear() {
	clear(l.elems)
	l.elems = l.elems[:0]
	l.free = l.free[:0]
	l.head, l.tail, l.size = none, none, 0
}

// All yields the values from head to tail. The list must not be modified
// while iterating.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := l.head; r != none; r = l.at(r).next {
			if !yield(l.at(r).value) {
				return
			}
		}
	}
}

// Backward yields the values from tail to head. The list must not be
// modified while iterating.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := l.tail; r != none; r = l.at(r).prev {
			if !yield(l.at(r).value) {
				return
			}
		}
	}
}

// Values returns a copy of the values from head to tail.
func (l *List[T]) Values() []T {
	return slices.AppendSeq(make([]T, 0, l.size), l.All())
}

func (l *List[T]) at(r Ref) *element[T] {
	return &l.elems[r-1]
}

func (l *List[T]) valid(r Ref) bool {
	return r > none && int(r) <= len(l.elems) && l.elems[r-1].live
}

func (l *List[T]) alloc(v T) Ref {
	if n := len(l.free); n > 0 {
		r := l.free[n-1]
		l.free = l.free[:n-1]
		*l.at(r) = element[T]{live: true, value: v}
		return r
	}
	l.elems = append(l.elems, element[T]{live: true, value: v})
	return Ref(len(l.elems))
}

func (l *List[T]) release(r Ref) T {
	e := l.at(r)
	v := e.value
	*e = element[T]{}
	l.free = append(l.free, r)
	return v
}
