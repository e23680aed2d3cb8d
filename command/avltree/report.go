// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/traverse"
)

// what to do after loading the input
type request struct {
	remove    []int // one occurrence each
	removeAll []int // every occurrence
	dump      bool  // draw the tree
	check     bool  // run consistency checks
}

// load a file into a new tree and apply the removals
func buildTree(log *logger.L, fileName string, req request) (*avl.Tree[int], error) {
	values, err := readFile(fileName)
	if nil != err {
		return nil, err
	}
	log.Infof("read: %d values from: %q", len(values), fileName)

	tree := avl.New[int]()
	for _, v := range values {
		tree.Add(v)
	}

	for _, v := range req.remove {
		if !tree.Contains(v) {
			log.Warnf("remove: %d not present", v)
			continue
		}
		tree.Remove(v)
		log.Debugf("removed one: %d  count: %d", v, tree.Count())
	}
	for _, v := range req.removeAll {
		before := tree.Count()
		tree.RemoveAll(v)
		log.Debugf("removed all: %d  occurrences: %d", v, before-tree.Count())
	}

	if req.check {
		if err := tree.Check(); nil != err {
			log.Criticalf("tree check failed: %s", err)
			tree.Destroy()
			return nil, err
		}
		created, free := tree.PoolStats()
		log.Infof("tree check passed  height: %d  nodes created: %d  free: %d", tree.Height(), created, free)
	}
	return tree, nil
}

// write the report in the same layout for every run
func report(w io.Writer, tree *avl.Tree[int], dump bool) error {
	if _, err := fmt.Fprintf(w, "\nThe AVL tree has %d nodes.\n", tree.Count()); nil != err {
		return err
	}

	if dump {
		fmt.Fprintf(w, "\nTree structure:\n")
		tree.Print(w)
	}

	fmt.Fprintf(w, "\nPrinting the AVL tree breadth-first : \n")
	if err := traverse.PrintByHeight(w, tree); nil != err {
		return err
	}

	start := time.Now()
	path, cost := traverse.MinCostPath(tree)
	elapsed := time.Since(start)

	fmt.Fprintf(w, "\n\nThe minimum-cost path has %d nodes printed top-down from the root to the leaf: \n", len(path))
	for _, v := range path {
		fmt.Fprintf(w, "%d ", v)
	}
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "\nThe minimum-cost path costs %d\n", cost)

	_, err := fmt.Fprintf(w, "\nYour execution time to find the mincost path is %f microseconds\n", float64(elapsed.Nanoseconds())/1000.0)
	return err
}
