// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding a multiset of ordered
// values
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Equal values are permitted and are always routed to the left on
// insert, so every occurrence of a value sits in one in-order run.
// Each node caches its height (a leaf is zero and an absent child is
// -1) and the balance factor right-height minus left-height is kept
// within -1…+1 at every node.
//
// Insert repairs balance one node at a time along the search path.
// The delete routines instead re-balance the whole sub-tree below each
// node they touch since promoting an in-order successor reaches across
// sub-trees.
//
// Nodes are obtained from and returned to a per-tree free list, so the
// number of nodes created less the number held in the free list is
// always the tree's count.
package avl
