// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"math"

	"github.com/bitmark-inc/rbtree/fault"
)

// Color - the colour bit of a node
type Color int8

// node colours
const (
	Red Color = iota
	Black
)

// String - printable colour name
func (c Color) String() string {
	if Red == c {
		return "red"
	}
	return "black"
}

// selects one of the two children; the mirror cases of the fixups
// are written once in terms of a direction and its opposite
type direction int

const (
	left  direction = 0
	right direction = 1
)

func (d direction) opposite() direction {
	return 1 - d
}

// slot number in the arena
type nodeID uint32

// slot zero is the sentinel
const sentinel nodeID = 0

// highest usable slot
const maxNodes = math.MaxUint32

// a node in the tree
type node[K any] struct {
	key    K
	color  Color
	child  [2]nodeID // left and right sub-trees
	parent nodeID
	gen    uint32 // incremented every time the slot is released
}

// arena - per-tree node storage, slot zero holds the sentinel
type arena[K any] struct {
	nodes []node[K]
	free  []nodeID // linked list of reclaimed slots, used as a stack
}

// create an arena holding only the sentinel
func newArena[K any](capacity int) *arena[K] {
	a := &arena[K]{
		nodes: make([]node[K], 1, capacity+1),
	}
	a.nodes[sentinel].color = Black
	return a
}

// allocate a new red leaf, reuses reclaimed slots if any are available
//
// may grow the node slice, so callers must not hold element pointers
// across a call
func (a *arena[K]) alloc(key K, parent nodeID) nodeID {
	var id nodeID
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if uint64(len(a.nodes)) >= maxNodes {
			panic(fault.ErrTreeFull)
		}
		a.nodes = append(a.nodes, node[K]{})
		id = nodeID(len(a.nodes) - 1)
	}
	p := &a.nodes[id]
	p.key = key
	p.color = Red
	p.child = [2]nodeID{sentinel, sentinel}
	p.parent = parent
	return id
}

// reclaim a slot and keep it for reuse
func (a *arena[K]) release(id nodeID) {
	var zero K
	p := &a.nodes[id]
	p.key = zero
	p.color = Black
	p.child = [2]nodeID{sentinel, sentinel}
	p.parent = sentinel
	p.gen += 1
	a.free = append(a.free, id)
}

// number of slots that currently hold keys
func (a *arena[K]) used() int {
	return len(a.nodes) - 1 - len(a.free)
}
