// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if at least one occurrence of value is in the tree
func (tree *Tree[T]) Contains(value T) bool {
	p := tree.root
	for nil != p {
		if tree.eq(p.value, value) {
			return true
		}
		if tree.lte(value, p.value) {
			p = p.left
		} else {
			p = p.right
		}
	}
	return false
}
