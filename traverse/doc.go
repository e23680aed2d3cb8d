// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package traverse - read-only walks over an avl tree
//
// Only the root, the count and the per-node value, left, right and
// height accessors are used; a tree is never modified here.
package traverse
