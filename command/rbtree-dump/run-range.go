// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/rbtree/fault"
	"github.com/bitmark-inc/rbtree/rbtree"
)

func runRange(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	args := c.Args()
	if len(args) < 3 {
		return fault.ErrMissingArgument
	}

	if m.numeric {
		return countRange(m, args[0], args[1], args[2:], parseNumber, numberOrder(m.descending))
	}
	return countRange(m, args[0], args[1], args[2:], parseString, stringOrder(m.descending))
}

func countRange[K any](m *metadata, low string, high string, keys []string, parse func(string) (K, error), less rbtree.LessFunc[K]) error {
	tree, err := build(m, keys, parse, less)
	if nil != err {
		return err
	}
	a, err := parse(low)
	if nil != err {
		return err
	}
	b, err := parse(high)
	if nil != err {
		return err
	}

	n := tree.CountRange(a, b)
	if m.verbose {
		fmt.Fprintf(m.w, "between: %q and %q: ", low, high)
	}
	fmt.Fprintf(m.w, "%d\n", n)
	return nil
}
