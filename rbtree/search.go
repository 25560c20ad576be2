// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/rbtree/fault"
)

// Find - locate the key equal to key
//
// returns the end iterator if not found
func (tree *Tree[K]) Find(key K) Iterator[K] {
	return tree.iteratorAt(tree.search(key))
}

// Contains - true if a key equal to key is present
func (tree *Tree[K]) Contains(key K) bool {
	return sentinel != tree.search(key)
}

func (tree *Tree[K]) search(key K) nodeID {
	nodes := tree.store.nodes
	x := tree.root
	for sentinel != x {
		switch {
		case tree.less(key, nodes[x].key):
			x = nodes[x].child[left]
		case tree.less(nodes[x].key, key):
			x = nodes[x].child[right]
		default:
			return x
		}
	}
	return sentinel
}

// LowerBound - first key that does not order before key
func (tree *Tree[K]) LowerBound(key K) Iterator[K] {
	nodes := tree.store.nodes
	candidate := sentinel
	x := tree.root
	for sentinel != x {
		if tree.less(nodes[x].key, key) {
			x = nodes[x].child[right]
		} else {
			candidate = x
			x = nodes[x].child[left]
		}
	}
	return tree.iteratorAt(candidate)
}

// UpperBound - first key that orders after key
func (tree *Tree[K]) UpperBound(key K) Iterator[K] {
	nodes := tree.store.nodes
	candidate := sentinel
	x := tree.root
	for sentinel != x {
		if tree.less(key, nodes[x].key) {
			candidate = x
			x = nodes[x].child[left]
		} else {
			x = nodes[x].child[right]
		}
	}
	return tree.iteratorAt(candidate)
}

// Distance - number of Next steps from first to reach last
//
// if last cannot be reached an assertion is reported and the number of
// steps to the end is returned
func (tree *Tree[K]) Distance(first Iterator[K], last Iterator[K]) int {
	if first.tree != tree || last.tree != tree {
		tree.assert("distance", fault.ErrForeignIterator, sentinel)
		return 0
	}
	if first.stale() {
		tree.assert("distance", fault.ErrStaleIterator, first.node)
		return 0
	}
	if last.stale() {
		tree.assert("distance", fault.ErrStaleIterator, last.node)
		return 0
	}

	n := 0
	for x := first.node; x != last.node; x = tree.successor(x) {
		if sentinel == x {
			tree.assert("distance", fault.ErrUnreachableIterator, last.node)
			return n
		}
		n += 1
	}
	return n
}

// CountRange - number of keys k with a <= k <= b under the tree's
// ordering, a and b may be given in either order
func (tree *Tree[K]) CountRange(a K, b K) int {
	if tree.less(b, a) {
		a, b = b, a
	}
	return tree.Distance(tree.LowerBound(a), tree.UpperBound(b))
}
