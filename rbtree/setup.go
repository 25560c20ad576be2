// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"golang.org/x/exp/constraints"
)

// LessFunc - strict weak ordering on keys
type LessFunc[K any] func(a K, b K) bool

// Tree - the red-black tree
type Tree[K any] struct {
	less     LessFunc[K]
	store    *arena[K]
	root     nodeID
	count    int
	reporter Reporter
}

// New - create an initially empty tree ordered by less
func New[K any](less LessFunc[K]) *Tree[K] {
	if nil == less {
		panic("rbtree: nil less function")
	}
	return &Tree[K]{
		less:     less,
		store:    newArena[K](0),
		root:     sentinel,
		reporter: silent{},
	}
}

// NewOrdered - create an empty tree using the natural < ordering
func NewOrdered[K constraints.Ordered]() *Tree[K] {
	return New[K](func(a K, b K) bool {
		return a < b
	})
}

// SetReporter - route diagnostic events to r, nil restores the
// default which discards them
func (tree *Tree[K]) SetReporter(r Reporter) {
	if nil == r {
		r = silent{}
	}
	tree.reporter = r
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return sentinel == tree.root
}

// Len - number of keys currently in the tree
func (tree *Tree[K]) Len() int {
	return tree.count
}

// Height - number of nodes on the longest root to leaf path
func (tree *Tree[K]) Height() int {
	return tree.height(tree.root)
}

func (tree *Tree[K]) height(x nodeID) int {
	if sentinel == x {
		return 0
	}
	n := &tree.store.nodes[x]
	l := tree.height(n.child[left])
	r := tree.height(n.child[right])
	if l > r {
		return l + 1
	}
	return r + 1
}

// Keys - all keys in ascending order
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, 0, tree.count)
	tree.Ascend(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Ascend - call fn for each key in order until it returns false
func (tree *Tree[K]) Ascend(fn func(key K) bool) {
	for x := tree.minimum(tree.root); sentinel != x; x = tree.successor(x) {
		if !fn(tree.store.nodes[x].key) {
			return
		}
	}
}
