// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/rbtree/fault"
)

// Check - verify the structure of the tree
//
// returns the first violation found: ordering, parent links, colour
// rules, black height or the key count
func (tree *Tree[K]) Check() error {
	nodes := tree.store.nodes
	if Black != nodes[sentinel].color {
		return fault.ErrRedSentinel
	}
	if Black != nodes[tree.root].color {
		return fault.ErrRedRoot
	}
	if sentinel != tree.root && sentinel != nodes[tree.root].parent {
		return fault.ErrParentLink
	}

	c := checker[K]{tree: tree}
	if _, err := c.subtree(tree.root, nil, nil); nil != err {
		return err
	}
	if c.count != tree.count || c.count != tree.store.used() {
		return fault.ErrCountMismatch
	}
	return nil
}

type checker[K any] struct {
	tree  *Tree[K]
	count int
}

// returns the black height of the subtree at x; lower and upper are the
// exclusive key bounds inherited from the ancestors, nil if unbounded
func (c *checker[K]) subtree(x nodeID, lower *K, upper *K) (int, error) {
	if sentinel == x {
		return 1, nil
	}
	c.count += 1

	tree := c.tree
	n := &tree.store.nodes[x]
	if nil != lower && !tree.less(*lower, n.key) {
		return 0, fault.ErrOrderViolation
	}
	if nil != upper && !tree.less(n.key, *upper) {
		return 0, fault.ErrOrderViolation
	}

	for _, d := range []direction{left, right} {
		ch := n.child[d]
		if sentinel == ch {
			continue
		}
		if x != tree.store.nodes[ch].parent {
			return 0, fault.ErrParentLink
		}
		if Red == n.color && Red == tree.store.nodes[ch].color {
			return 0, fault.ErrRedWithRedChild
		}
	}

	key := n.key
	lh, err := c.subtree(n.child[left], lower, &key)
	if nil != err {
		return 0, err
	}
	rh, err := c.subtree(n.child[right], &key, upper)
	if nil != err {
		return 0, err
	}
	if lh != rh {
		return 0, fault.ErrBlackHeightMismatch
	}
	if Black == n.color {
		lh += 1
	}
	return lh, nil
}
