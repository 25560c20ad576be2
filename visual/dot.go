// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package visual - render a tree in Graphviz DOT format
package visual

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/rbtree/rbtree"
)

// Options - control the generated graph
type Options struct {
	Name    string // graph name, "rbtree" if empty
	ShowNil bool   // draw the sentinel leaves as points
}

// WriteDot - write the tree as a DOT digraph
//
// only the read-only walk of the tree is used so this cannot disturb
// the structure
func WriteDot[K any](w io.Writer, tree *rbtree.Tree[K], options Options) error {
	name := options.Name
	if "" == name {
		name = "rbtree"
	}

	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "digraph %s {\n", strconv.Quote(name))
	fmt.Fprintf(b, "  node [shape=circle, style=filled, fontcolor=white];\n")

	leaves := 0
	tree.Walk(func(v rbtree.View[K]) bool {
		fill := "black"
		if rbtree.Red == v.Color {
			fill = "red"
		}
		label := strconv.Quote(fmt.Sprint(v.Key))
		fmt.Fprintf(b, "  n%d [label=%s, fillcolor=%s];\n", v.ID, label, fill)

		for _, child := range []uint32{v.Left, v.Right} {
			if 0 != child {
				fmt.Fprintf(b, "  n%d -> n%d;\n", v.ID, child)
			} else if options.ShowNil {
				leaves += 1
				fmt.Fprintf(b, "  nil%d [shape=point];\n", leaves)
				fmt.Fprintf(b, "  n%d -> nil%d;\n", v.ID, leaves)
			}
		}
		return true
	})

	fmt.Fprintf(b, "}\n")
	return b.Flush()
}
