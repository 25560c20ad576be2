// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/rbtree/fault"
)

// Erase - remove the key equal to key
//
// returns false if no such key was present
func (tree *Tree[K]) Erase(key K) bool {
	z := tree.search(key)
	if sentinel == z {
		return false
	}
	tree.erase(z)
	return true
}

// EraseAt - remove the key at an iterator's position
//
// the iterator must be valid and belong to this tree, otherwise an
// assertion is reported and the tree is left unchanged
func (tree *Tree[K]) EraseAt(it Iterator[K]) error {
	if it.tree != tree {
		tree.assert("erase", fault.ErrForeignIterator, sentinel)
		return fault.ErrForeignIterator
	}
	if it.IsEnd() {
		tree.assert("erase", fault.ErrEraseEnd, sentinel)
		return fault.ErrEraseEnd
	}
	if it.stale() {
		tree.assert("erase", fault.ErrStaleIterator, it.node)
		return fault.ErrStaleIterator
	}
	tree.erase(it.node)
	return nil
}

// unlink and release z
func (tree *Tree[K]) erase(z nodeID) {
	nodes := tree.store.nodes

	y := z
	removedColor := nodes[y].color
	var x nodeID

	switch {
	case sentinel == nodes[z].child[left]:
		x = nodes[z].child[right]
		tree.transplant(z, x)

	case sentinel == nodes[z].child[right]:
		x = nodes[z].child[left]
		tree.transplant(z, x)

	default:
		// splice out the successor and put it in z's place
		y = tree.minimum(nodes[z].child[right])
		removedColor = nodes[y].color
		x = nodes[y].child[right]
		if z == nodes[y].parent {
			nodes[x].parent = y
		} else {
			tree.transplant(y, x)
			nodes[y].child[right] = nodes[z].child[right]
			nodes[nodes[y].child[right]].parent = y
		}
		tree.transplant(z, y)
		nodes[y].child[left] = nodes[z].child[left]
		nodes[nodes[y].child[left]].parent = y
		nodes[y].color = nodes[z].color
	}

	tree.store.release(z)
	tree.count -= 1

	if Black == removedColor {
		tree.fixErase(x)
	}

	// the fixup may have borrowed the sentinel's parent link
	nodes[sentinel].parent = sentinel
	nodes[sentinel].color = Black
}

// x carries an extra black, move it up the tree until it can be
// absorbed
func (tree *Tree[K]) fixErase(x nodeID) {
	nodes := tree.store.nodes
	for x != tree.root && Black == nodes[x].color {
		p := nodes[x].parent
		d := left
		if x != nodes[p].child[left] {
			d = right
		}
		o := d.opposite()
		w := nodes[p].child[o]

		// red sibling: rotate so the sibling is black
		if Red == nodes[w].color {
			nodes[w].color = Black
			nodes[p].color = Red
			tree.rotate(p, d)
			w = nodes[p].child[o]
		}

		near := nodes[w].child[d]
		far := nodes[w].child[o]

		// both nephews black: recolour and move up
		if Black == nodes[near].color && Black == nodes[far].color {
			nodes[w].color = Red
			x = p
			continue
		}

		// far nephew black: rotate the red near nephew outwards
		if Black == nodes[far].color {
			nodes[near].color = Black
			nodes[w].color = Red
			tree.rotate(w, o)
			w = nodes[p].child[o]
			far = nodes[w].child[o]
		}

		nodes[w].color = nodes[p].color
		nodes[p].color = Black
		nodes[far].color = Black
		tree.rotate(p, d)
		x = tree.root
	}
	nodes[x].color = Black
}
