// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Insert - add a key to the tree
//
// returns an iterator positioned on the key and true if it was added,
// or positioned on the existing equal key and false if already present
func (tree *Tree[K]) Insert(key K) (Iterator[K], bool) {
	parent := sentinel
	d := left
	x := tree.root
	for sentinel != x {
		parent = x
		n := &tree.store.nodes[x]
		switch {
		case tree.less(key, n.key):
			d = left
		case tree.less(n.key, key):
			d = right
		default:
			return tree.iteratorAt(x), false
		}
		x = n.child[d]
	}

	z := tree.store.alloc(key, parent)

	// alloc may have moved the slice
	nodes := tree.store.nodes
	if sentinel == parent {
		tree.root = z
	} else {
		nodes[parent].child[d] = z
	}
	tree.count += 1

	tree.fixInsert(z)
	return tree.iteratorAt(z), true
}

// restore the colour rules after linking the red leaf z
func (tree *Tree[K]) fixInsert(z nodeID) {
	nodes := tree.store.nodes
	for Red == nodes[nodes[z].parent].color {
		p := nodes[z].parent
		g := nodes[p].parent
		d := tree.side(p)
		o := d.opposite()
		uncle := nodes[g].child[o]

		// red uncle: push the blackness down from the grandparent
		if Red == nodes[uncle].color {
			nodes[p].color = Black
			nodes[uncle].color = Black
			nodes[g].color = Red
			z = g
			continue
		}

		// inner grandchild: straighten into the outer case
		if z == nodes[p].child[o] {
			z = p
			tree.rotate(z, d)
			p = nodes[z].parent
		}

		// outer grandchild
		nodes[p].color = Black
		nodes[g].color = Red
		tree.rotate(g, o)
	}
	nodes[tree.root].color = Black
}
