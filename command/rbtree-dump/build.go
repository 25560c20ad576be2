// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/rbtree/fault"
	"github.com/bitmark-inc/rbtree/rbtree"
)

func parseString(s string) (string, error) {
	return s, nil
}

func parseNumber(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidKey
	}
	return n, nil
}

func stringOrder(descending bool) rbtree.LessFunc[string] {
	if descending {
		return func(a string, b string) bool { return a > b }
	}
	return func(a string, b string) bool { return a < b }
}

func numberOrder(descending bool) rbtree.LessFunc[int64] {
	if descending {
		return func(a int64, b int64) bool { return a > b }
	}
	return func(a int64, b int64) bool { return a < b }
}

// insert every key then apply the erasures
func build[K any](m *metadata, keys []string, parse func(string) (K, error), less rbtree.LessFunc[K]) (*rbtree.Tree[K], error) {
	if 0 == len(keys) {
		return nil, fault.ErrMissingArgument
	}

	tree := rbtree.New(less)
	if m.verbose {
		tree.SetReporter(&writerReporter{w: m.e})
	}

	for _, s := range keys {
		key, err := parse(s)
		if nil != err {
			return nil, fmt.Errorf("key: %q: %w", s, err)
		}
		if _, added := tree.Insert(key); !added && m.verbose {
			fmt.Fprintf(m.e, "duplicate key: %q\n", s)
		}
	}

	for _, s := range m.erase {
		key, err := parse(s)
		if nil != err {
			return nil, fmt.Errorf("erase: %q: %w", s, err)
		}
		if !tree.Erase(key) && m.verbose {
			fmt.Fprintf(m.e, "erase: %q not present\n", s)
		}
	}

	if err := tree.Check(); nil != err {
		return nil, err
	}
	return tree, nil
}

// show diagnostic events on the error stream
type writerReporter struct {
	w io.Writer
}

func (r *writerReporter) Assert(e rbtree.Event) {
	fmt.Fprintf(r.w, "assertion: %s: %s\n", e.Operation, e.Err)
}

func (r *writerReporter) Warn(e rbtree.Event) {
	fmt.Fprintf(r.w, "warning: %s: %s\n", e.Operation, e.Err)
}
