// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
	"io"
)

// position of a node relative to its parent for drawing
type branch int

const (
	atRoot branch = iota
	onLeft
	onRight
)

// Print - draw the tree sideways with the largest keys at the top and
// returns the maximum depth
//
// red nodes are marked with an asterisk
func (tree *Tree[K]) Print(w io.Writer) int {
	return tree.printTree(w, tree.root, "", atRoot)
}

func (tree *Tree[K]) printTree(w io.Writer, x nodeID, prefix string, br branch) int {
	if sentinel == x {
		return 0
	}
	n := &tree.store.nodes[x]
	l, r := n.child[left], n.child[right]

	rd := 0
	if sentinel != r {
		t := "       "
		if onLeft == br {
			t = "|      "
		}
		rd = tree.printTree(w, r, prefix+t, onRight)
	}

	switch br {
	case atRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case onLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case onRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}

	mark := ""
	if Red == n.color {
		mark = "*"
	}
	if sentinel == n.parent {
		fmt.Fprintf(w, "%v%s\n", n.key, mark)
	} else {
		fmt.Fprintf(w, "%v%s ^%v\n", n.key, mark, tree.store.nodes[n.parent].key)
	}

	ld := 0
	if sentinel != l {
		t := "       "
		if onRight == br {
			t = "|      "
		}
		ld = tree.printTree(w, l, prefix+t, onLeft)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
