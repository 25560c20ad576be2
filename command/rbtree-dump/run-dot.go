// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/rbtree/rbtree"
	"github.com/bitmark-inc/rbtree/visual"
)

func runDot(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	options := visual.Options{
		Name:    c.String("name"),
		ShowNil: c.Bool("nil"),
	}

	if m.numeric {
		tree, err := build(m, c.Args(), parseNumber, numberOrder(m.descending))
		if nil != err {
			return err
		}
		return dotTree(m, tree, options)
	}

	tree, err := build(m, c.Args(), parseString, stringOrder(m.descending))
	if nil != err {
		return err
	}
	return dotTree(m, tree, options)
}

func dotTree[K any](m *metadata, tree *rbtree.Tree[K], options visual.Options) error {
	return visual.WriteDot(m.w, tree, options)
}
