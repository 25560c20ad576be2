// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/rbtree/configuration"
	"github.com/bitmark-inc/rbtree/fault"
)

type sample struct {
	DataDirectory   string               `gluamapper:"data_directory"`
	Order           string               `gluamapper:"order"`
	FatalAssertions bool                 `gluamapper:"fatal_assertions"`
	Logging         logger.Configuration `gluamapper:"logging"`
}

const sampleSource = `
local M = {}

M.data_directory = arg[0]:match("(.*/)") or "."
M.order = "descending"
M.fatal_assertions = true

M.logging = {
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        tree = "warn",
        query = "info",
    }
}

return M
`

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "sample.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(sampleSource), 0600), "write")

	var c sample
	err := configuration.ParseConfigurationFile(fileName, &c)
	require.NoError(t, err, "parse")

	assert.Equal(t, dir+"/", c.DataDirectory, "data directory from arg[0]")
	assert.Equal(t, "descending", c.Order, "order")
	assert.True(t, c.FatalAssertions, "fatal")
	assert.Equal(t, 1048576, c.Logging.Size, "log size")
	assert.Equal(t, 10, c.Logging.Count, "log count")
	assert.False(t, c.Logging.Console, "console")
	assert.Equal(t, "warn", c.Logging.Levels["tree"], "tree level")
	assert.Equal(t, "info", c.Logging.Levels["query"], "query level")
}

func TestParseStringKeepsDefaults(t *testing.T) {
	c := sample{
		DataDirectory: "/var/lib/rbtree",
		Order:         "ascending",
	}
	err := configuration.ParseConfigurationString("inline", `return { fatal_assertions = true }`, &c)
	require.NoError(t, err, "parse")
	assert.Equal(t, "/var/lib/rbtree", c.DataDirectory, "unchanged")
	assert.Equal(t, "ascending", c.Order, "unchanged")
	assert.True(t, c.FatalAssertions, "set")
}

func TestParseErrors(t *testing.T) {
	var c sample

	err := configuration.ParseConfigurationFile("/no/such/file.conf", &c)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")

	err = configuration.ParseConfigurationString("inline", `return 42`, &c)
	assert.Equal(t, fault.ErrConfigurationNoTable, err, "not a table")

	err = configuration.ParseConfigurationString("inline", `return {`, &c)
	assert.Error(t, err, "syntax error")

	err = configuration.ParseConfigurationString("inline", `return {}`, c)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	n := 3
	err = configuration.ParseConfigurationString("inline", `return {}`, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a struct")
}
