// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package diagnostics

import (
	"sync/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/rbtree/fault"
	"github.com/bitmark-inc/rbtree/rbtree"
)

// Reporter - an rbtree.Reporter that writes to a logger channel and
// keeps a tally of the events seen
type Reporter struct {
	log        *logger.L
	fatal      bool
	assertions uint64
	warnings   uint64
}

// New - create a reporter on a log channel
//
// if fatal is set any assertion panics after logging
func New(log *logger.L, fatal bool) *Reporter {
	if nil == log {
		fault.Panicf("diagnostics: nil logger channel")
	}
	return &Reporter{
		log:   log,
		fatal: fatal,
	}
}

// Assert - record a violated precondition or invariant
func (r *Reporter) Assert(e rbtree.Event) {
	atomic.AddUint64(&r.assertions, 1)
	if r.fatal {
		r.log.Criticalf("%s: %s  node: %d  key: %v", e.Operation, e.Err, e.Node, e.Key)
		r.log.Flush()
		fault.Panicf("%s: %s", e.Operation, e.Err)
	}
	r.log.Errorf("%s: %s  node: %d  key: %v", e.Operation, e.Err, e.Node, e.Key)
}

// Warn - record recoverable misuse
func (r *Reporter) Warn(e rbtree.Event) {
	atomic.AddUint64(&r.warnings, 1)
	r.log.Warnf("%s: %s  node: %d  key: %v", e.Operation, e.Err, e.Node, e.Key)
}

// Counts - number of assertions and warnings reported so far
func (r *Reporter) Counts() (assertions uint64, warnings uint64) {
	return atomic.LoadUint64(&r.assertions), atomic.LoadUint64(&r.warnings)
}

// Summary - log the totals at info level
func (r *Reporter) Summary() {
	a, w := r.Counts()
	r.log.Infof("assertions: %d  warnings: %d", a, w)
}
