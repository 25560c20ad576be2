// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/rbtree/fault"
)

// rotate x towards d, promoting its child on the opposite side
//
//	rotate(x, left):
//
//	    x              y
//	   / \            / \
//	  a   y    =>    x   c
//	     / \        / \
//	    b   c      a   b
func (tree *Tree[K]) rotate(x nodeID, d direction) {
	nodes := tree.store.nodes
	o := d.opposite()
	y := nodes[x].child[o]
	if sentinel == x || sentinel == y {
		tree.assert("rotate", fault.ErrRotateWithoutChild, x)
		return
	}

	b := nodes[y].child[d]
	nodes[x].child[o] = b
	if sentinel != b {
		nodes[b].parent = x
	}

	tree.replaceChild(nodes[x].parent, x, y)
	nodes[y].parent = nodes[x].parent

	nodes[y].child[d] = x
	nodes[x].parent = y
}

// make v occupy the position of u in the tree, v may be the sentinel
// and then receives u's parent as required by the delete fixup
func (tree *Tree[K]) transplant(u nodeID, v nodeID) {
	if sentinel == u {
		tree.assert("transplant", fault.ErrTransplantSentinel, u)
		return
	}
	nodes := tree.store.nodes
	p := nodes[u].parent
	tree.replaceChild(p, u, v)
	nodes[v].parent = p
}

// point whichever link of p referred to old at replacement instead, the
// sentinel as p means old was the root
func (tree *Tree[K]) replaceChild(p nodeID, old nodeID, replacement nodeID) {
	if sentinel == p {
		tree.root = replacement
		return
	}
	nodes := tree.store.nodes
	if old == nodes[p].child[left] {
		nodes[p].child[left] = replacement
	} else {
		nodes[p].child[right] = replacement
	}
}

// which side of its parent x hangs from
func (tree *Tree[K]) side(x nodeID) direction {
	nodes := tree.store.nodes
	if x == nodes[nodes[x].parent].child[left] {
		return left
	}
	return right
}

// furthest node from x following only d links
func (tree *Tree[K]) extreme(x nodeID, d direction) nodeID {
	if sentinel == x {
		return sentinel
	}
	nodes := tree.store.nodes
	for sentinel != nodes[x].child[d] {
		x = nodes[x].child[d]
	}
	return x
}

func (tree *Tree[K]) minimum(x nodeID) nodeID {
	return tree.extreme(x, left)
}

func (tree *Tree[K]) maximum(x nodeID) nodeID {
	return tree.extreme(x, right)
}

// neighbour of x in direction d (right is successor), the sentinel
// if there is none
func (tree *Tree[K]) step(x nodeID, d direction) nodeID {
	nodes := tree.store.nodes
	if c := nodes[x].child[d]; sentinel != c {
		return tree.extreme(c, d.opposite())
	}
	p := nodes[x].parent
	for sentinel != p && x == nodes[p].child[d] {
		x = p
		p = nodes[p].parent
	}
	return p
}

func (tree *Tree[K]) successor(x nodeID) nodeID {
	return tree.step(x, right)
}

func (tree *Tree[K]) predecessor(x nodeID) nodeID {
	return tree.step(x, left)
}
