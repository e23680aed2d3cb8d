// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/fault"
)

// Ordered - types with a natural order usable with New
type Ordered interface {
	constraints.Ordered
}

// LessOrEqualFunc - total order used to place values, true if a <= b
type LessOrEqualFunc[T any] func(a T, b T) bool

// EqualFunc - equality predicate, must agree with the LessOrEqualFunc
// i.e. a == b implies a <= b and b <= a
type EqualFunc[T any] func(a T, b T) bool

// Node - a node in the tree
type Node[T any] struct {
	left   *Node[T] // left sub-tree, values <= value
	right  *Node[T] // right sub-tree
	value  T
	height int // leaf is zero
	free   bool
}

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root      *Node[T]
	count     int
	lte       LessOrEqualFunc[T]
	eq        EqualFunc[T]
	pool      *Node[T] // linked list of reclaimed nodes
	created   int      // total nodes created
	freeNodes int      // number of nodes in the pool
	destroyed bool
}

// New - create an initially empty tree for a type with a natural order
func New[T Ordered]() *Tree[T] {
	return NewFunc(
		func(a T, b T) bool { return a <= b },
		func(a T, b T) bool { return a == b },
	)
}

// NewFunc - create an initially empty tree ordered by the given
// predicates
func NewFunc[T any](lte LessOrEqualFunc[T], eq EqualFunc[T]) *Tree[T] {
	if nil == lte || nil == eq {
		fault.Panic("avl: ordering functions are required")
	}
	return &Tree[T]{
		root:  nil,
		count: 0,
		lte:   lte,
		eq:    eq,
	}
}

// Tolerance - equality for floating values that differ by no more
// than epsilon
func Tolerance[T constraints.Float](epsilon T) EqualFunc[T] {
	return func(a T, b T) bool {
		d := a - b
		if d < 0 {
			d = -d
		}
		return d <= epsilon
	}
}

// Clear - release every node and leave the tree empty
func (tree *Tree[T]) Clear() {
	tree.mustBeLive()
	tree.freeAll(tree.root)
	tree.root = nil
	tree.count = 0
}

// children first so no freed node is read again
func (tree *Tree[T]) freeAll(p *Node[T]) {
	if nil == p {
		return
	}
	tree.freeAll(p.left)
	tree.freeAll(p.right)
	tree.freeNode(p)
}

// Destroy - clear the tree and drop its free list, the tree must not
// be used afterwards
func (tree *Tree[T]) Destroy() {
	tree.Clear()
	tree.pool = nil
	tree.freeNodes = 0
	tree.created = 0
	tree.destroyed = true
}

func (tree *Tree[T]) mustBeLive() {
	if tree.destroyed {
		fault.Panic("avl: tree used after destroy")
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Height - height of the root, -1 for an empty tree
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}

// ChildrenAtDepth - returns all nodes at a specific depth below a node
func (p *Node[T]) ChildrenAtDepth(depth uint) []*Node[T] {
	nodes := []*Node[T]{}

	if 0 == depth {
		nodes = append(nodes, p)
	} else {
		if nil != p.left {
			nodes = append(nodes, p.left.ChildrenAtDepth(depth-1)...)
		}
		if nil != p.right {
			nodes = append(nodes, p.right.ChildrenAtDepth(depth-1)...)
		}
	}
	return nodes
}

// Value - read the value from a node
func (p *Node[T]) Value() T {
	return p.value
}

// Left - left sub-tree or nil
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - right sub-tree or nil
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[T]) Height() int {
	return height(p)
}
