// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/rbtree/rbtree"
)

func populated(keys ...int) *rbtree.Tree[int] {
	tree := rbtree.NewOrdered[int]()
	for _, key := range keys {
		tree.Insert(key)
	}
	return tree
}

func TestCloneIndependence(t *testing.T) {
	original := populated(17, 15, 16, 1, 6, 7, 2, 3, 5)

	var shape bytes.Buffer
	original.Print(&shape)

	c := original.Clone()
	require.NoError(t, c.Check(), "clone check")
	assert.Equal(t, original.Keys(), c.Keys(), "clone keys")

	var cloneShape bytes.Buffer
	c.Print(&cloneShape)
	assert.Equal(t, shape.String(), cloneShape.String(), "clone shape and colours")

	c.Insert(100)
	c.Erase(6)
	c.Erase(17)
	require.NoError(t, c.Check(), "clone check after mutation")
	assert.Equal(t, []int{1, 2, 3, 5, 7, 15, 16, 100}, c.Keys(), "mutated clone")

	require.NoError(t, original.Check(), "original check")
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7, 15, 16, 17}, original.Keys(), "original keys")

	var after bytes.Buffer
	original.Print(&after)
	assert.Equal(t, shape.String(), after.String(), "original shape")
}

func TestCloneEmpty(t *testing.T) {
	c := rbtree.NewOrdered[int]().Clone()
	assert.True(t, c.IsEmpty(), "empty")
	assert.NoError(t, c.Check(), "check")
	c.Insert(1)
	assert.Equal(t, []int{1}, c.Keys(), "keys")
}

func TestCopyFrom(t *testing.T) {
	src := populated(4, 2, 6)
	dst := populated(10, 20, 30, 40)

	old := dst.Find(20)
	dst.CopyFrom(src)

	require.NoError(t, dst.Check(), "check")
	assert.Equal(t, []int{2, 4, 6}, dst.Keys(), "keys")
	assert.False(t, old.Valid(), "iterator into replaced contents")

	dst.Insert(5)
	assert.Equal(t, []int{2, 4, 6}, src.Keys(), "source unaffected")

	// self assignment keeps the contents
	dst.CopyFrom(dst)
	assert.Equal(t, []int{2, 4, 5, 6}, dst.Keys(), "self copy")
}

func TestTake(t *testing.T) {
	src := populated(3, 1, 2)
	dst := populated(9)

	it := src.Find(2)
	dst.Take(src)

	require.NoError(t, dst.Check(), "destination check")
	require.NoError(t, src.Check(), "source check")
	assert.Equal(t, []int{1, 2, 3}, dst.Keys(), "destination keys")
	assert.True(t, src.IsEmpty(), "source empty")
	assert.Equal(t, 0, src.Len(), "source count")
	assert.False(t, it.Valid(), "iterator into moved contents")

	// both remain usable
	src.Insert(7)
	dst.Insert(4)
	assert.Equal(t, []int{7}, src.Keys(), "source reused")
	assert.Equal(t, []int{1, 2, 3, 4}, dst.Keys(), "destination extended")
}

func TestClearReuse(t *testing.T) {
	tree := populated(5, 4, 3, 2, 1)
	it := tree.Find(3)
	tree.Clear()

	assert.True(t, tree.IsEmpty(), "empty")
	assert.Equal(t, 0, tree.Len(), "count")
	assert.False(t, it.Valid(), "iterator after clear")

	for _, key := range []int{8, 6, 7} {
		tree.Insert(key)
	}
	require.NoError(t, tree.Check(), "check")
	assert.Equal(t, []int{6, 7, 8}, tree.Keys(), "keys")
}
