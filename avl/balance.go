// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// restore balance at one node whose children are already balanced
// returns the possibly new sub-tree root
func singleBalance[T any](p *Node[T]) *Node[T] {
	if nil == p {
		return nil
	}

	bf := balanceFactor(p)
	if bf < -1 { // left branch too tall
		if height(p.left.right) > height(p.left.left) {
			// LR case
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	} else if bf > 1 { // right branch too tall
		if height(p.right.left) > height(p.right.right) {
			// RL case
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	}

	setHeight(p)
	return p
}

// re-balance an entire sub-tree from the bottom up
func balance[T any](p *Node[T]) *Node[T] {
	if nil == p {
		return nil
	}
	p.left = balance(p.left)
	p.right = balance(p.right)
	if bf := balanceFactor(p); bf >= -2 && bf <= 2 {
		return singleBalance(p)
	}

	// several nodes left one side, e.g. a run of equal values
	return join(p.left, p, p.right)
}

// join two balanced sub-trees of any heights through p by descending
// the spine of the taller one until the heights are within one
func join[T any](l *Node[T], p *Node[T], r *Node[T]) *Node[T] {
	if height(l) > height(r)+1 {
		l.right = join(l.right, p, r)
		return singleBalance(l)
	}
	if height(r) > height(l)+1 {
		r.left = join(l, p, r.left)
		return singleBalance(r)
	}
	p.left = l
	p.right = r
	setHeight(p)
	return p
}
