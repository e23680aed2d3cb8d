// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// The file is an ordinary Lua chunk that must finish by returning a
// table, so base Lua such as os.getenv or string handling is
// available to compute settings.  The global arg[0] holds the file
// name.
package configuration
