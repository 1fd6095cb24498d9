// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bst implements an ordered map on top of an unbalanced binary
// search tree.
//
// The tree is never rebalanced: inserting keys in sorted order degrades it
// into a chain of height n. Callers that replay recorded operation traces
// rely on this shape (see [Map.Height]).
package bst

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

const none = 0

// Map[K,V] associates unique keys with values and iterates them in
// ascending key order.
//
// Nodes live in an arena and reference their children by index. Index 0
// is reserved for "no node".
//
// This data structure does not perform any synchronization and is not
// safe to use concurrently without external locking.
type Map[K cmp.Ordered, V any] struct {
	nodes []node[K, V]
	free  []int

	root int
	size int
}

type node[K cmp.Ordered, V any] struct {
	key   K
	value V

	left  int
	right int
}

// New returns an empty map with room for [capacity] nodes.
func New[K cmp.Ordered, V any](capacity int) *Map[K, V] {
	return &Map[K, V]{nodes: make([]node[K, V], 0, capacity)}
}

// Len returns the number of keys in m.
func (m *Map[K, V]) Len() int { return m.size }

// Insert adds [key] with [value]. If [key] is already present the existing
// value is kept and Insert returns false.
func (m *Map[K, V]) Insert(key K, value V) bool {
	root, inserted := m.insert(m.root, key, value)
	m.root = root
	return inserted
}

func (m *Map[K, V]) insert(n int, key K, value V) (int, bool) {
	if n == none {
		return m.alloc(key, value), true
	}
	// Children are re-addressed by index because [alloc] may move the arena.
	switch c := cmp.Compare(key, m.at(n).key); {
	case c < 0:
		left, ok := m.insert(m.at(n).left, key, value)
		m.at(n).left = left
		return n, ok
	case c > 0:
		right, ok := m.insert(m.at(n).right, key, value)
		m.at(n).right = right
		return n, ok
	default:
		return n, false
	}
}

// Search returns the value stored under [key] and whether it was found.
func (m *Map[K, V]) Search(key K) (V, bool) {
	n := m.root
	for n != none {
		nd := m.at(n)
		switch c := cmp.Compare(key, nd.key); {
		case c < 0:
			n = nd.left
		case c > 0:
			n = nd.right
		default:
			return nd.value, true
		}
	}
	return *new(V), false
}

// Delete removes [key] and reports whether it was present.
//
// A node with two children is not unlinked: it takes over the key and
// value of its in-order successor, which is then deleted from the right
// subtree.
func (m *Map[K, V]) Delete(key K) bool {
	root, deleted := m.delete(m.root, key)
	m.root = root
	return deleted
}

func (m *Map[K, V]) delete(n int, key K) (int, bool) {
	if n == none {
		return none, false
	}
	nd := m.at(n)
	switch c := cmp.Compare(key, nd.key); {
	case c < 0:
		left, ok := m.delete(nd.left, key)
		nd.left = left
		return n, ok
	case c > 0:
		right, ok := m.delete(nd.right, key)
		nd.right = right
		return n, ok
	}

	switch {
	case nd.left == none && nd.right == none:
		m.release(n)
		return none, true
	case nd.left == none:
		child := nd.right
		m.release(n)
		return child, true
	case nd.right == none:
		child := nd.left
		m.release(n)
		return child, true
	}

	succ := m.at(m.leftmost(nd.right))
	nd.key, nd.value = succ.key, succ.value
	nd.right, _ = m.delete(nd.right, nd.key)
	return n, true
}

// Min returns the smallest key, or false if m is empty.
func (m *Map[K, V]) Min() (K, bool) {
	if m.root == none {
		return *new(K), false
	}
	return m.at(m.leftmost(m.root)).key, true
}

// Max returns the largest key, or false if m is empty.
func (m *Map[K, V]) Max() (K, bool) {
	if m.root == none {
		return *new(K), false
	}
	n := m.root
	for m.at(n).right != none {
		n = m.at(n).right
	}
	return m.at(n).key, true
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (m *Map[K, V]) Height() int {
	return m.height(m.root)
}

func (m *Map[K, V]) height(n int) int {
	if n == none {
		return 0
	}
	return 1 + max(m.height(m.at(n).left), m.height(m.at(n).right))
}

// InOrder yields every key/value pair in ascending key order. Each call
// starts an independent traversal. m must not be modified while iterating.
func (m *Map[K, V]) InOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.walk(m.root, yield)
	}
}

func (m *Map[K, V]) walk(n int, yield func(K, V) bool) bool {
	if n == none {
		return true
	}
	nd := m.at(n)
	return m.walk(nd.left, yield) && yield(nd.key, nd.value) && m.walk(nd.right, yield)
}

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for k := range m.InOrder() {
		keys = append(keys, k)
	}
	return keys
}

// Clear drops every node but keeps the arena capacity.
func (m *Map[K, V]) Clear() {
	clear(m.nodes)
	m.nodes = m.nodes[:0]
	m.free = m.free[:0]
	m.root, m.size = none, 0
}

// Span returns the distance between the largest and the smallest key of
// [m], or 0 if [m] is empty.
func Span[K constraints.Integer | constraints.Float, V any](m *Map[K, V]) K {
	lo, ok := m.Min()
	if !ok {
		return 0
	}
	hi, _ := m.Max()
	return hi - lo
}

func (m *Map[K, V]) leftmost(n int) int {
	for m.at(n).left != none {
		n = m.at(n).left
	}
	return n
}

func (m *Map[K, V]) at(n int) *node[K, V] {
	return &m.nodes[n-1]
}

func (m *Map[K, V]) alloc(key K, value V) int {
	m.size++
	if l := len(m.free); l > 0 {
		n := m.free[l-1]
		m.free = m.free[:l-1]
		*m.at(n) = node[K, V]{key: key, value: value}
		return n
	}
	m.nodes = append(m.nodes, node[K, V]{key: key, value: value})
	return len(m.nodes)
}

func (m *Map[K, V]) release(n int) {
	*m.at(n) = node[K, V]{}
	m.free = append(m.free, n)
	m.size--
}
