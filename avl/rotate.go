// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// left rotation, p.right must exist and becomes the sub-tree root
//
//	  p               r
//	 / \             / \
//	a   r    →      p   c
//	   / \         / \
//	  b   c       a   b
func rotateLeft[T any](p *Node[T]) *Node[T] {
	r := p.right
	p.right = r.left
	r.left = p

	// p is now below r
	setHeight(p)
	setHeight(r)
	return r
}

// right rotation, p.left must exist and becomes the sub-tree root
//
//	    p           l
//	   / \         / \
//	  l   c   →   a   p
//	 / \             / \
//	a   b           b   c
func rotateRight[T any](p *Node[T]) *Node[T] {
	l := p.left
	p.left = l.right
	l.right = p

	setHeight(p)
	setHeight(l)
	return l
}
