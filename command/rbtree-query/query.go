// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/rbtree/fault"
	"github.com/bitmark-inc/rbtree/rbtree"
)

// request words read from the input
const (
	requestKey    = "k" // k KEY     insert a key
	requestQuery  = "q" // q A B     count keys in the closed range
	requestDelete = "d" // d KEY     erase a key
	requestFind   = "f" // f KEY     1 if present, 0 if not
	requestCheck  = "c" // c         verify the tree structure
	requestPrint  = "p" // p         draw the tree
)

// totals for the run
type queryStats struct {
	requests int
	inserted int
	erased   int
	queries  int
	invalid  int
}

type queryRunner struct {
	tree    *rbtree.Tree[int64]
	log     *logger.L
	words   *bufio.Scanner
	out     *bufio.Writer
	written bool
	stats   queryStats
}

// runQueries - process whitespace separated requests from in, writing
// answers separated by spaces to out
//
// unknown requests and malformed keys are logged and skipped
func runQueries(in io.Reader, out io.Writer, tree *rbtree.Tree[int64], log *logger.L) (queryStats, error) {
	words := bufio.NewScanner(in)
	words.Split(bufio.ScanWords)

	r := &queryRunner{
		tree:  tree,
		log:   log,
		words: words,
		out:   bufio.NewWriter(out),
	}

	err := r.run()
	if r.written {
		fmt.Fprintln(r.out)
	}
	if ferr := r.out.Flush(); nil == err {
		err = ferr
	}
	return r.stats, err
}

func (r *queryRunner) run() error {
	for r.words.Scan() {
		request := r.words.Text()
		r.stats.requests += 1

		switch request {
		case requestKey:
			keys, err := r.arguments(request, 1)
			if nil != err {
				return err
			}
			if nil == keys {
				continue
			}
			if _, added := r.tree.Insert(keys[0]); added {
				r.stats.inserted += 1
			}

		case requestQuery:
			keys, err := r.arguments(request, 2)
			if nil != err {
				return err
			}
			if nil == keys {
				continue
			}
			r.stats.queries += 1
			r.answer(r.tree.CountRange(keys[0], keys[1]))

		case requestDelete:
			keys, err := r.arguments(request, 1)
			if nil != err {
				return err
			}
			if nil == keys {
				continue
			}
			if r.tree.Erase(keys[0]) {
				r.stats.erased += 1
			}

		case requestFind:
			keys, err := r.arguments(request, 1)
			if nil != err {
				return err
			}
			if nil == keys {
				continue
			}
			if r.tree.Contains(keys[0]) {
				r.answer(1)
			} else {
				r.answer(0)
			}

		case requestCheck:
			if err := r.tree.Check(); nil != err {
				r.log.Errorf("check failed: %s", err)
				return err
			}
			r.log.Debugf("check: %d keys  height: %d", r.tree.Len(), r.tree.Height())

		case requestPrint:
			if r.written {
				fmt.Fprintln(r.out)
				r.written = false
			}
			r.tree.Print(r.out)

		default:
			r.stats.invalid += 1
			r.log.Warnf("invalid request: %q", request)
		}
	}
	return r.words.Err()
}

// read the next n words as keys
//
// returns nil keys, after logging, if any word is not a number or the
// input ends early; every word is consumed either way
func (r *queryRunner) arguments(request string, n int) ([]int64, error) {
	keys := make([]int64, 0, n)
	valid := true
	for i := 0; i < n; i += 1 {
		if !r.words.Scan() {
			if err := r.words.Err(); nil != err {
				return nil, err
			}
			r.stats.invalid += 1
			r.log.Warnf("request: %q: %s", request, fault.ErrMissingArgument)
			return nil, nil
		}
		word := r.words.Text()
		key, err := strconv.ParseInt(word, 10, 64)
		if nil != err {
			r.log.Warnf("request: %q  argument: %q: %s", request, word, fault.ErrInvalidKey)
			valid = false
			continue
		}
		keys = append(keys, key)
	}
	if !valid {
		r.stats.invalid += 1
		return nil, nil
	}
	return keys, nil
}

func (r *queryRunner) answer(n int) {
	fmt.Fprintf(r.out, "%d ", n)
	r.written = true
}
