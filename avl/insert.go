// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Add - insert a value into the tree, duplicates are kept and counted
func (tree *Tree[T]) Add(value T) {
	tree.root = tree.insert(value, tree.root)
	tree.count += 1
}

// internal routine for insert
func (tree *Tree[T]) insert(value T, p *Node[T]) *Node[T] {
	if nil == p { // insert new node
		return tree.newNode(value)
	}

	if tree.lte(value, p.value) {
		p.left = tree.insert(value, p.left)
	} else {
		p.right = tree.insert(value, p.right)
	}

	// only this path has grown
	return singleBalance(p)
}
