// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

//go:generate mockgen -destination=mocks/reporter.go -package=mocks github.com/bitmark-inc/rbtree/rbtree Reporter

// Event - details of a misuse or internal inconsistency detected by
// the tree
type Event struct {
	Operation string      // name of the tree operation
	Err       error       // one of the fault errors
	Node      uint32      // slot involved, zero for the sentinel
	Key       interface{} // key involved, nil if none
}

// Reporter - receives diagnostic events from a tree
//
// Assert is called when a precondition or internal invariant is
// violated, Warn for recoverable misuse such as stepping past the end.
// The tree always continues with a defined result after the call
// returns.
type Reporter interface {
	Assert(Event)
	Warn(Event)
}

// the default reporter discards everything
type silent struct{}

func (silent) Assert(Event) {}
func (silent) Warn(Event)   {}

func (tree *Tree[K]) assert(operation string, err error, id nodeID) {
	tree.reporter.Assert(tree.event(operation, err, id))
}

func (tree *Tree[K]) warn(operation string, err error, id nodeID) {
	tree.reporter.Warn(tree.event(operation, err, id))
}

func (tree *Tree[K]) event(operation string, err error, id nodeID) Event {
	e := Event{
		Operation: operation,
		Err:       err,
		Node:      uint32(id),
	}
	if sentinel != id && int(id) < len(tree.store.nodes) {
		e.Key = tree.store.nodes[id].key
	}
	return e
}
