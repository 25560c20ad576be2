// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree_test

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/rbtree/rbtree"
)

func Example() {
	tree := rbtree.NewOrdered[int]()
	for _, key := range []int{17, 15, 16, 1, 6, 7, 2, 3, 5} {
		tree.Insert(key)
	}
	tree.Erase(15)

	keys := []int{}
	for it := tree.Begin(); !it.IsEnd(); it.Next() {
		keys = append(keys, it.Key())
	}
	fmt.Println(keys)
	fmt.Println("in [2, 7]:", tree.CountRange(2, 7))

	// Output:
	// [1 2 3 5 6 7 16 17]
	// in [2, 7]: 5
}

func ExampleTree_Print() {
	tree := rbtree.NewOrdered[string]()
	for _, key := range []string{"b", "a", "c"} {
		tree.Insert(key)
	}
	depth := tree.Print(os.Stdout)
	fmt.Println("depth:", depth)

	// Output:
	//        /------+ c* ^b
	// |------+ b
	//        \------+ a* ^b
	// depth: 2
}
