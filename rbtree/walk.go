// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// View - read only snapshot of one node, slot numbers are only
// meaningful within a single walk; zero means no node
type View[K any] struct {
	ID     uint32
	Key    K
	Color  Color
	Parent uint32
	Left   uint32
	Right  uint32
}

// Walk - visit every node in pre-order until fn returns false
func (tree *Tree[K]) Walk(fn func(View[K]) bool) {
	tree.walk(tree.root, fn)
}

func (tree *Tree[K]) walk(x nodeID, fn func(View[K]) bool) bool {
	if sentinel == x {
		return true
	}
	n := tree.store.nodes[x]
	v := View[K]{
		ID:     uint32(x),
		Key:    n.key,
		Color:  n.color,
		Parent: uint32(n.parent),
		Left:   uint32(n.child[left]),
		Right:  uint32(n.child[right]),
	}
	if !fn(v) {
		return false
	}
	return tree.walk(n.child[left], fn) && tree.walk(n.child[right], fn)
}
