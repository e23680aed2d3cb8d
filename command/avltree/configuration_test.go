// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationDefaults(t *testing.T) {
	config, err := getConfiguration("")
	require.NoError(t, err, "defaults")

	base := filepath.Join(os.TempDir(), "avltree")
	assert.Equal(t, base, config.DataDirectory, "data directory")
	assert.Equal(t, "", config.Input, "input")
	assert.Equal(t, filepath.Join(base, defaultLogDirectory), config.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, config.Logging.File, "log file")
	assert.Equal(t, "critical", config.Logging.Levels[logger.DefaultTag], "log level")
}

func TestConfigurationFile(t *testing.T) {
	dir := filepath.Join(testDirectory, "config")
	require.NoError(t, os.MkdirAll(dir, 0700), "config directory")

	fileName := filepath.Join(dir, "avltree.conf")
	text := `
return {
    data_directory = ".",
    input = "numbers.txt",
    logging = {
        directory = "logs",
        file = "run.log",
        size = 4096,
        count = 2,
        levels = {
            DEFAULT = "info",
        },
    },
}
`
	require.NoError(t, os.WriteFile(fileName, []byte(text), 0600), "write config")

	config, err := getConfiguration(fileName)
	require.NoError(t, err, "parse")

	assert.Equal(t, dir, filepath.Clean(config.DataDirectory), "data directory")
	assert.Equal(t, filepath.Join(dir, "numbers.txt"), config.Input, "input")
	assert.Equal(t, filepath.Join(dir, "logs"), config.Logging.Directory, "log directory")
	assert.Equal(t, "run.log", config.Logging.File, "log file")
	assert.Equal(t, 2, config.Logging.Count, "log count")

	info, err := os.Stat(config.Logging.Directory)
	require.NoError(t, err, "log directory created")
	assert.True(t, info.IsDir(), "log directory")
}

func TestConfigurationMissingFile(t *testing.T) {
	_, err := getConfiguration(filepath.Join(testDirectory, "missing.conf"))
	assert.Error(t, err, "missing file accepted")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/x.txt", ensureAbsolute("/data", "x.txt"), "relative")
	assert.Equal(t, "/other/x.txt", ensureAbsolute("/data", "/other/x.txt"), "absolute")
	assert.Equal(t, "/data/x.txt", ensureAbsolute("/data/sub", "../x.txt"), "cleaned")
}
