// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

var testDirectory string

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "avltree-test")
	if nil != err {
		panic(fmt.Sprintf("temporary directory failed: %s", err))
	}
	testDirectory = dir

	logConfig := logger.Configuration{
		Directory: dir,
		File:      "test.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	if err := logger.Initialise(logConfig); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

func writeFile(t *testing.T, name string, text string) string {
	fileName := filepath.Join(testDirectory, name)
	err := ioutil.WriteFile(fileName, []byte(text), 0600)
	require.NoError(t, err, "write: %s", name)
	return fileName
}

func TestReadValues(t *testing.T) {
	values, err := readValues(strings.NewReader("5 3\n8\t1\n\n  -4 0x10 010 +7\n"))
	require.NoError(t, err, "read")
	assert.Equal(t, []int{5, 3, 8, 1, -4, 16, 8, 7}, values, "values")

	values, err = readValues(strings.NewReader(""))
	require.NoError(t, err, "read empty")
	assert.Empty(t, values, "empty input")
}

func TestReadValuesRejectsWords(t *testing.T) {
	_, err := readValues(strings.NewReader("1 2 three 4"))
	require.Error(t, err, "bad word accepted")
	assert.True(t, errors.Is(err, fault.ErrInvalidInteger), "wrong error: %s", err)
	assert.Contains(t, err.Error(), `item 3: "three"`, "position")
}

func TestReadFileMissing(t *testing.T) {
	_, err := readFile(filepath.Join(testDirectory, "no-such-file"))
	assert.Equal(t, fault.ErrNotFoundInputFile, err, "missing file")
}

func TestParseValueOptions(t *testing.T) {
	values, err := parseValueOptions([]string{"4", "-2", "0x0f"})
	require.NoError(t, err, "parse")
	assert.Equal(t, []int{4, -2, 15}, values, "values")

	_, err = parseValueOptions([]string{"4", "x"})
	assert.Equal(t, fault.ErrInvalidRemoveValue, err, "bad value")
}

func TestBuildTreeWithRemovals(t *testing.T) {
	fileName := writeFile(t, "removals.txt", "4 4 4 2 6 9 9\n")
	log := logger.New("test")

	req := request{
		remove:    []int{9, 100},
		removeAll: []int{4},
		check:     true,
	}
	tree, err := buildTree(log, fileName, req)
	require.NoError(t, err, "build")
	defer tree.Destroy()

	assert.Equal(t, 3, tree.Count(), "count")
	assert.True(t, tree.Contains(9), "one nine kept")
	assert.False(t, tree.Contains(4), "fours removed")
	assert.NoError(t, tree.Check(), "check")
}

func TestReport(t *testing.T) {
	fileName := writeFile(t, "report.txt", "1 2 3 4 5 6 7")
	log := logger.New("test")

	var b bytes.Buffer
	err := run(log, &b, fileName, request{dump: true})
	require.NoError(t, err, "run")

	out := b.String()
	assert.Contains(t, out, "The AVL tree has 7 nodes.", "count line")
	assert.Contains(t, out, "Tree structure:", "dump")
	assert.Contains(t, out, "Total tree height = 3 \n", "height line")
	assert.Contains(t, out, "Height: 3 :  1  3  5  7 \n", "last level")
	assert.Contains(t, out, "The minimum-cost path has 3 nodes printed top-down from the root to the leaf: \n4 2 1 \n", "path")
	assert.Contains(t, out, "The minimum-cost path costs 3\n", "cost")
	assert.Contains(t, out, "microseconds", "timing")
}

func TestReportEmptyFile(t *testing.T) {
	fileName := writeFile(t, "empty.txt", "\n")
	log := logger.New("test")

	var b bytes.Buffer
	err := run(log, &b, fileName, request{})
	require.NoError(t, err, "run")
	assert.Contains(t, b.String(), "The AVL tree has 0 nodes.", "count line")
	assert.Contains(t, b.String(), "The minimum-cost path has 0 nodes", "path")
}

func TestRunBadInput(t *testing.T) {
	fileName := writeFile(t, "bad.txt", "1 2 x")
	log := logger.New("test")

	var b bytes.Buffer
	err := run(log, &b, fileName, request{})
	assert.True(t, errors.Is(err, fault.ErrInvalidInteger), "wrong error: %v", err)
	assert.Empty(t, b.String(), "output written")
}
