// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/rbtree/fault"
)

type recorder struct {
	asserts []Event
	warns   []Event
}

func (r *recorder) Assert(e Event) {
	r.asserts = append(r.asserts, e)
}

func (r *recorder) Warn(e Event) {
	r.warns = append(r.warns, e)
}

func build(keys ...int) *Tree[int] {
	tree := NewOrdered[int]()
	for _, key := range keys {
		tree.Insert(key)
	}
	return tree
}

func TestCheckDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		keys    []int
		corrupt func(tree *Tree[int])
		err     error
	}{
		{
			name: "red root",
			keys: []int{1, 2, 3},
			corrupt: func(tree *Tree[int]) {
				tree.store.nodes[tree.root].color = Red
			},
			err: fault.ErrRedRoot,
		},
		{
			name: "red sentinel",
			keys: []int{1},
			corrupt: func(tree *Tree[int]) {
				tree.store.nodes[sentinel].color = Red
			},
			err: fault.ErrRedSentinel,
		},
		{
			name: "red with red child",
			keys: []int{1, 2, 3, 4},
			corrupt: func(tree *Tree[int]) {
				tree.store.nodes[tree.search(3)].color = Red
			},
			err: fault.ErrRedWithRedChild,
		},
		{
			name: "black height",
			keys: []int{1, 2, 3},
			corrupt: func(tree *Tree[int]) {
				tree.store.nodes[tree.search(1)].color = Black
			},
			err: fault.ErrBlackHeightMismatch,
		},
		{
			name: "order",
			keys: []int{1, 2, 3},
			corrupt: func(tree *Tree[int]) {
				a := tree.search(1)
				b := tree.search(3)
				nodes := tree.store.nodes
				nodes[a].key, nodes[b].key = nodes[b].key, nodes[a].key
			},
			err: fault.ErrOrderViolation,
		},
		{
			name: "parent link",
			keys: []int{1, 2, 3},
			corrupt: func(tree *Tree[int]) {
				tree.store.nodes[tree.search(1)].parent = tree.search(3)
			},
			err: fault.ErrParentLink,
		},
		{
			name: "root parent",
			keys: []int{1, 2, 3},
			corrupt: func(tree *Tree[int]) {
				tree.store.nodes[tree.root].parent = tree.search(1)
			},
			err: fault.ErrParentLink,
		},
		{
			name: "count",
			keys: []int{1, 2, 3},
			corrupt: func(tree *Tree[int]) {
				tree.count += 1
			},
			err: fault.ErrCountMismatch,
		},
	}

	for _, test := range tests {
		tree := build(test.keys...)
		require.NoError(t, tree.Check(), "%s: before corruption", test.name)
		test.corrupt(tree)
		err := tree.Check()
		assert.Equal(t, test.err, err, test.name)
		assert.True(t, fault.IsErrInvariant(err), "%s: classification", test.name)
	}
}

func TestRotatePrecondition(t *testing.T) {
	r := &recorder{}
	tree := build(5)
	tree.SetReporter(r)

	root := tree.root
	tree.rotate(root, left)
	tree.rotate(root, right)
	tree.rotate(sentinel, left)

	require.Len(t, r.asserts, 3, "asserts")
	for _, e := range r.asserts {
		assert.Equal(t, "rotate", e.Operation, "operation")
		assert.Equal(t, fault.ErrRotateWithoutChild, e.Err, "error")
	}
	assert.Equal(t, 5, r.asserts[0].Key, "key in event")
	assert.Nil(t, r.asserts[2].Key, "no key for sentinel")
	assert.Equal(t, root, tree.root, "root unchanged")
	assert.NoError(t, tree.Check(), "check")
}

func TestRotateRoundTrip(t *testing.T) {
	tree := build(2, 1, 3)
	x := tree.root

	tree.rotate(x, left)
	assert.Equal(t, 3, tree.store.nodes[tree.root].key, "after left rotation")
	assert.Equal(t, x, tree.store.nodes[tree.root].child[left], "old root demoted")

	tree.rotate(tree.root, right)
	assert.Equal(t, x, tree.root, "after right rotation")
	assert.Equal(t, []int{1, 2, 3}, tree.Keys(), "order preserved")
	assert.NoError(t, tree.Check(), "check")
}

func TestTransplantSentinel(t *testing.T) {
	r := &recorder{}
	tree := build(1, 2)
	tree.SetReporter(r)

	tree.transplant(sentinel, tree.root)

	require.Len(t, r.asserts, 1, "asserts")
	assert.Equal(t, fault.ErrTransplantSentinel, r.asserts[0].Err, "error")
	assert.NoError(t, tree.Check(), "check")
}

func TestSlotReuse(t *testing.T) {
	tree := build(1, 2, 3, 4)
	slots := len(tree.store.nodes)

	tree.Erase(2)
	tree.Erase(3)
	assert.Len(t, tree.store.free, 2, "free list")

	tree.Insert(7)
	tree.Insert(8)
	assert.Len(t, tree.store.free, 0, "free list after reuse")
	assert.Equal(t, slots, len(tree.store.nodes), "no growth")
	assert.Equal(t, 4, tree.store.used(), "used")
	assert.NoError(t, tree.Check(), "check")
}

func TestSentinelParentReset(t *testing.T) {
	tree := build(10, 5, 15, 3)
	tree.Erase(15)
	assert.Equal(t, sentinel, tree.store.nodes[sentinel].parent, "sentinel parent")
	assert.Equal(t, Black, tree.store.nodes[sentinel].color, "sentinel colour")
	assert.NoError(t, tree.Check(), "check")
}
