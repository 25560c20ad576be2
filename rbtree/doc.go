// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rbtree - a red-black balanced tree holding a set of unique
// keys in the order given by a caller supplied less function
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes live in a per-tree arena and refer to each other by slot
// number.  Slot zero is the sentinel: an always black node that stands
// in for every absent child and for the parent of the root, so the
// rotation and fixup code never has to test for a missing neighbour.
//
// Iterators follow the usual associative container rules: inserting
// or erasing keys does not disturb other iterators, but an iterator
// positioned on an erased key becomes stale.  Staleness is detected
// on use and reported rather than silently reading a reused slot.
package rbtree
