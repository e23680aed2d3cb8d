// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/avltree/fault"
)

// read every integer from a file
func readFile(fileName string) ([]int, error) {
	f, err := os.Open(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return nil, fault.ErrNotFoundInputFile
		}
		return nil, err
	}
	defer f.Close()

	return readValues(f)
}

// whitespace separated integers, base taken from the prefix as for
// C's %i conversion
func readValues(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	values := make([]int, 0, 100)
	for n := 1; scanner.Scan(); n += 1 {
		word := scanner.Text()
		v, err := parseInteger(word)
		if nil != err {
			return nil, fmt.Errorf("%w: item %d: %q", fault.ErrInvalidInteger, n, word)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return values, nil
}

// decimal, 0x hex or leading zero octal with optional sign
func parseInteger(s string) (int, error) {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if nil != err {
		return 0, err
	}
	return int(v), nil
}
