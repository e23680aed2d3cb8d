// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltree - load integers from a file into a balanced tree and report
// on it
//
//	avltree [--help] [--verbose] [--quiet] [--version]
//	        [--config-file=FILE] [--remove=N ...] [--remove-all=N ...]
//	        [--dump] [--watch] [FILE]
//
// FILE holds whitespace or newline separated integers, written as
// decimal, 0x-prefixed hex or 0-prefixed octal.  When FILE is omitted
// the "input" setting of the configuration file is used.
//
// The report gives the node count, every level of the tree from the
// root down, and the minimum-cost root-to-leaf path where the cost is
// the sum of the absolute differences between each parent and child.
//
// With --watch the report is rebuilt each time the file is written,
// until the file is removed or the program is interrupted.
package main
