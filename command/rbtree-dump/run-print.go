// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/rbtree/rbtree"
)

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if m.numeric {
		tree, err := build(m, c.Args(), parseNumber, numberOrder(m.descending))
		if nil != err {
			return err
		}
		return printTree(m, tree)
	}

	tree, err := build(m, c.Args(), parseString, stringOrder(m.descending))
	if nil != err {
		return err
	}
	return printTree(m, tree)
}

func printTree[K any](m *metadata, tree *rbtree.Tree[K]) error {
	depth := tree.Print(m.w)
	if m.verbose {
		fmt.Fprintf(m.w, "keys: %d  depth: %d\n", tree.Len(), depth)
	}
	return nil
}
