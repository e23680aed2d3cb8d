// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traverse

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/avl"
)

// Number - values that a path cost can be computed over
type Number interface {
	constraints.Integer | constraints.Float
}

// MinCostPath - the root-to-leaf path whose sum of absolute
// parent/child differences is lowest
//
// Ties prefer the left branch. The path is listed from the root down
// and is nil for an empty tree.
func MinCostPath[T Number](tree *avl.Tree[T]) ([]T, T) {
	root := tree.Root()
	if nil == root {
		return nil, 0
	}

	path := make([]T, 0, root.Height()+1)
	cost := minCost(root, &path)

	// built leaf first
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, cost
}

// internal: appends the cheapest path below p in leaf to p order and
// returns its cost
func minCost[T Number](p *avl.Node[T], path *[]T) T {
	l := p.Left()
	r := p.Right()

	var cost T
	switch {
	case nil == l && nil == r:
		// leaf
	case nil == r:
		cost = difference(p.Value(), l.Value()) + minCost(l, path)
	case nil == l:
		cost = difference(p.Value(), r.Value()) + minCost(r, path)
	default:
		var leftPath, rightPath []T
		lc := difference(p.Value(), l.Value()) + minCost(l, &leftPath)
		rc := difference(p.Value(), r.Value()) + minCost(r, &rightPath)
		if lc <= rc {
			*path = append(*path, leftPath...)
			cost = lc
		} else {
			*path = append(*path, rightPath...)
			cost = rc
		}
	}
	*path = append(*path, p.Value())
	return cost
}

// absolute difference that is also safe for unsigned values
func difference[T Number](a T, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
