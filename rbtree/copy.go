// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Clone - an independent copy with the same shape and colours
func (tree *Tree[K]) Clone() *Tree[K] {
	c := &Tree[K]{
		less:     tree.less,
		store:    newArena[K](tree.count),
		root:     sentinel,
		count:    tree.count,
		reporter: tree.reporter,
	}
	c.root = c.copySubtree(tree, tree.root, sentinel)
	return c
}

// CopyFrom - replace the contents of tree with a copy of src
//
// the ordering is also taken from src
func (tree *Tree[K]) CopyFrom(src *Tree[K]) {
	if src == tree {
		return
	}
	tree.Clear()
	tree.less = src.less
	tree.root = tree.copySubtree(src, src.root, sentinel)
	tree.count = src.count
}

// Take - move the contents of src into tree, leaving src empty
//
// iterators into either tree's previous contents become stale
func (tree *Tree[K]) Take(src *Tree[K]) {
	if src == tree {
		return
	}
	tree.Clear()
	tree.less = src.less
	tree.store = src.store
	tree.root = src.root
	tree.count = src.count

	src.store = newArena[K](0)
	src.root = sentinel
	src.count = 0
}

// Clear - remove all keys
func (tree *Tree[K]) Clear() {
	tree.releaseSubtree(tree.root)
	tree.root = sentinel
	tree.count = 0
	tree.store.nodes[sentinel].parent = sentinel
}

// pre-order copy of the subtree of src rooted at x, returns the new slot
func (tree *Tree[K]) copySubtree(src *Tree[K], x nodeID, parent nodeID) nodeID {
	if sentinel == x {
		return sentinel
	}
	from := &src.store.nodes[x]
	y := tree.store.alloc(from.key, parent)
	tree.store.nodes[y].color = from.color

	l := tree.copySubtree(src, from.child[left], y)
	r := tree.copySubtree(src, from.child[right], y)

	// re-index, allocation may have moved the slice
	tree.store.nodes[y].child = [2]nodeID{l, r}
	return y
}

// post-order release
func (tree *Tree[K]) releaseSubtree(x nodeID) {
	if sentinel == x {
		return
	}
	n := &tree.store.nodes[x]
	l, r := n.child[left], n.child[right]
	tree.releaseSubtree(l)
	tree.releaseSubtree(r)
	tree.store.release(x)
}
