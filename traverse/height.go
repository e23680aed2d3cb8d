// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traverse

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/avltree/avl"
)

// ByHeight - values grouped by level, the first level is the root
func ByHeight[T any](tree *avl.Tree[T]) [][]T {
	root := tree.Root()
	if nil == root {
		return nil
	}

	levels := make([][]T, 0, root.Height()+1)
	for depth := 0; depth <= root.Height(); depth += 1 {
		nodes := root.ChildrenAtDepth(uint(depth))
		level := make([]T, 0, len(nodes))
		for _, n := range nodes {
			level = append(level, n.Value())
		}
		levels = append(levels, level)
	}
	return levels
}

// PrintByHeight - write the breadth-first listing, one line per level
func PrintByHeight[T any](w io.Writer, tree *avl.Tree[T]) error {
	levels := ByHeight(tree)

	if _, err := fmt.Fprintf(w, "Total tree height = %d \n", len(levels)); nil != err {
		return err
	}
	for i, level := range levels {
		if _, err := fmt.Fprintf(w, "Height: %d : ", i+1); nil != err {
			return err
		}
		for _, v := range level {
			if _, err := fmt.Fprintf(w, " %v ", v); nil != err {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); nil != err {
			return err
		}
	}
	return nil
}
