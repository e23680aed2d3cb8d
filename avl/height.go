// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// cached height of a node, -1 for an absent node
func height[T any](p *Node[T]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute height from the two children
func setHeight[T any](p *Node[T]) {
	lh := height(p.left)
	rh := height(p.right)
	if lh < rh {
		p.height = 1 + rh
	} else {
		p.height = 1 + lh
	}
}

// right height minus left height
func balanceFactor[T any](p *Node[T]) int {
	return height(p.right) - height(p.left)
}
