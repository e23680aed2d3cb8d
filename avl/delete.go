// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes one occurrence of value, no-op if not present
func (tree *Tree[T]) Remove(value T) {
	if !tree.Contains(value) {
		return
	}
	tree.root = tree.delete(value, tree.root)
	tree.count -= 1
}

// RemoveAll - removes every occurrence of value, no-op if not present
func (tree *Tree[T]) RemoveAll(value T) {
	if !tree.Contains(value) {
		return
	}
	tree.root = tree.deleteAll(value, tree.root)
}

// value of the lowest node in a sub-tree
func leftMost[T any](p *Node[T]) T {
	for nil != p.left {
		p = p.left
	}
	return p.value
}

// splice out the lowest node in a sub-tree
func (tree *Tree[T]) removeLeftMost(p *Node[T]) *Node[T] {
	if nil != p.left {
		p.left = tree.removeLeftMost(p.left)
		return balance(p)
	}
	r := p.right
	tree.freeNode(p)
	return r
}

// take the value out of a matched node: either promote the in-order
// successor's value or replace the node by its left sub-tree
// returns the replacement sub-tree root
func (tree *Tree[T]) unlink(p *Node[T]) *Node[T] {
	if nil != p.right {
		p.value = leftMost(p.right)
		p.right = tree.removeLeftMost(p.right)
		return p
	}
	l := p.left
	tree.freeNode(p)
	return l
}

// internal delete routine
func (tree *Tree[T]) delete(value T, p *Node[T]) *Node[T] {
	if nil == p { // value not in tree
		return nil
	}

	if tree.eq(value, p.value) {
		p = tree.unlink(p)
	} else if tree.lte(value, p.value) {
		p.left = tree.delete(value, p.left)
	} else {
		p.right = tree.delete(value, p.right)
	}
	return balance(p)
}

// internal delete of every occurrence, equal values can form a chain
// through successive successors or left children
func (tree *Tree[T]) deleteAll(value T, p *Node[T]) *Node[T] {
	for nil != p && tree.eq(value, p.value) {
		p = tree.unlink(p)
		tree.count -= 1
	}
	if nil == p {
		return nil
	}

	if tree.lte(value, p.value) {
		p.left = tree.deleteAll(value, p.left)
	} else {
		p.right = tree.deleteAll(value, p.right)
	}
	return balance(p)
}
