// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// Check - run all of the consistency checks, nil if the tree is valid
func (tree *Tree[T]) Check() error {
	if err := tree.CheckHeights(); nil != err {
		return err
	}
	if err := tree.CheckBalance(); nil != err {
		return err
	}
	if err := tree.CheckOrder(); nil != err {
		return err
	}
	return tree.CheckCount()
}

// CheckHeights - every cached height agrees with its children
func (tree *Tree[T]) CheckHeights() error {
	_, err := checkHeights(tree.root)
	return err
}

// internal: returns the computed height
func checkHeights[T any](p *Node[T]) (int, error) {
	if nil == p {
		return -1, nil
	}
	lh, err := checkHeights(p.left)
	if nil != err {
		return 0, err
	}
	rh, err := checkHeights(p.right)
	if nil != err {
		return 0, err
	}
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height {
		return 0, fmt.Errorf("height at node: %v  actual: %d  expected: %d", p.value, p.height, h)
	}
	return h, nil
}

// CheckBalance - every balance factor is within -1…+1
func (tree *Tree[T]) CheckBalance() error {
	return checkBalance(tree.root)
}

func checkBalance[T any](p *Node[T]) error {
	if nil == p {
		return nil
	}
	if bf := balanceFactor(p); bf < -1 || bf > 1 {
		return fmt.Errorf("balance at node: %v  factor: %+d", p.value, bf)
	}
	if err := checkBalance(p.left); nil != err {
		return err
	}
	return checkBalance(p.right)
}

// CheckOrder - an in-order walk never decreases
//
// Equal values normally descend to the left, but a rotation can lift
// one of a run of equal values above the others, so equality is
// allowed on both sides.
func (tree *Tree[T]) CheckOrder() error {
	var previous *Node[T]
	return tree.checkOrder(tree.root, &previous)
}

func (tree *Tree[T]) checkOrder(p *Node[T], previous **Node[T]) error {
	if nil == p {
		return nil
	}
	if err := tree.checkOrder(p.left, previous); nil != err {
		return err
	}
	if nil != *previous && !tree.lte((*previous).value, p.value) {
		return fmt.Errorf("order at node: %v  follows: %v", p.value, (*previous).value)
	}
	*previous = p
	return tree.checkOrder(p.right, previous)
}

// CheckCount - the count matches the reachable nodes and the free list
func (tree *Tree[T]) CheckCount() error {
	n := countNodes(tree.root)
	if n != tree.count {
		return fmt.Errorf("count: %d  reachable nodes: %d", tree.count, n)
	}
	if tree.created-tree.freeNodes != n {
		return fmt.Errorf("nodes created: %d  free: %d  reachable: %d", tree.created, tree.freeNodes, n)
	}
	return nil
}

func countNodes[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}
