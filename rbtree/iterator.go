// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/rbtree/fault"
)

// Iterator - a position in a tree, either on a key or at the end
//
// the zero value is not attached to any tree
type Iterator[K any] struct {
	tree  *Tree[K]
	store *arena[K]
	node  nodeID
	gen   uint32
}

func (tree *Tree[K]) iteratorAt(x nodeID) Iterator[K] {
	return Iterator[K]{
		tree:  tree,
		store: tree.store,
		node:  x,
		gen:   tree.store.nodes[x].gen,
	}
}

// Begin - iterator on the smallest key, the end iterator if empty
func (tree *Tree[K]) Begin() Iterator[K] {
	return tree.iteratorAt(tree.minimum(tree.root))
}

// Last - iterator on the largest key, the end iterator if empty
func (tree *Tree[K]) Last() Iterator[K] {
	return tree.iteratorAt(tree.maximum(tree.root))
}

// End - the position one past the largest key
func (tree *Tree[K]) End() Iterator[K] {
	return tree.iteratorAt(sentinel)
}

// the node this iterator refers to has been erased, or the tree's
// contents were moved or cleared since it was created
func (it Iterator[K]) stale() bool {
	if nil == it.tree {
		return true
	}
	if sentinel == it.node {
		return false
	}
	if it.store != it.tree.store {
		return true
	}
	return it.store.nodes[it.node].gen != it.gen
}

// IsEnd - true at the end position
func (it Iterator[K]) IsEnd() bool {
	return sentinel == it.node
}

// Valid - true if the iterator is positioned on a live key
func (it Iterator[K]) Valid() bool {
	return !it.IsEnd() && !it.stale()
}

// Equal - true if both refer to the same position in the same tree
func (it Iterator[K]) Equal(other Iterator[K]) bool {
	return it.tree == other.tree && it.node == other.node
}

// Key - the key at the iterator's position
//
// the zero key is returned, with an assertion, for the end position or
// a stale iterator
func (it Iterator[K]) Key() K {
	var zero K
	if nil == it.tree {
		return zero
	}
	if it.IsEnd() {
		it.tree.assert("key", fault.ErrDereferenceEnd, sentinel)
		return zero
	}
	if it.stale() {
		it.tree.assert("key", fault.ErrStaleIterator, it.node)
		return zero
	}
	return it.store.nodes[it.node].key
}

// Next - advance to the next larger key, or to the end
func (it *Iterator[K]) Next() {
	it.move(right, "next", fault.ErrIncrementPastEnd)
}

// Prev - move back to the next smaller key
//
// from the end position moves to the largest key, from the smallest key
// moves to the end position with a warning
func (it *Iterator[K]) Prev() {
	tree := it.tree
	if nil != tree && it.IsEnd() {
		x := tree.maximum(tree.root)
		if sentinel == x {
			tree.warn("prev", fault.ErrDecrementPastBegin, sentinel)
		}
		*it = tree.iteratorAt(x)
		return
	}
	it.move(left, "prev", fault.ErrDecrementPastBegin)
}

func (it *Iterator[K]) move(d direction, operation string, pastLimit error) {
	tree := it.tree
	if nil == tree {
		return
	}
	if it.IsEnd() {
		tree.warn(operation, pastLimit, sentinel)
		*it = tree.End()
		return
	}
	if it.stale() {
		tree.assert(operation, fault.ErrStaleIterator, it.node)
		*it = tree.End()
		return
	}
	x := tree.step(it.node, d)
	if sentinel == x && left == d {
		tree.warn(operation, pastLimit, it.node)
	}
	*it = tree.iteratorAt(x)
}
