// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (tree *Tree[T]) newNode(value T) *Node[T] {
	tree.mustBeLive()
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			fault.Panic("avl: pool corrupt")
		}
		tree.created += 1
		return &Node[T]{
			value:  value,
			height: 0,
		}
	}
	p := tree.pool
	tree.pool = p.left
	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	p.value = value
	p.height = 0
	p.free = false
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree[T]) freeNode(node *Node[T]) {
	if node.free {
		fault.Panicf("avl: node freed twice: %v", node.value)
	}
	var zero T

	node.left = tree.pool // use as free list pointer
	node.right = nil
	node.value = zero
	node.height = 0
	node.free = true
	tree.freeNodes += 1

	tree.pool = node
}

// PoolStats - nodes created over the life of the tree and the number
// currently waiting for reuse
func (tree *Tree[T]) PoolStats() (created int, free int) {
	return tree.created, tree.freeNodes
}
