// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/rbtree/fault"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	removeFiles()
	os.Exit(rc)
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func TestInitialise(t *testing.T) {
	assert.NoError(t, fault.Initialise(), "first")
	defer fault.Finalise()

	assert.Equal(t, fault.ErrAlreadyInitialised, fault.Initialise(), "second")
}

func TestPanicf(t *testing.T) {
	assert.NoError(t, fault.Initialise(), "initialise")
	defer fault.Finalise()

	fault.Criticalf("critical: %d", 1)

	assert.PanicsWithValue(t, "tree: 42", func() {
		fault.Panicf("tree: %d", 42)
	}, "panic value")

	assert.PanicsWithValue(t, "insert failed with error: oops", func() {
		fault.PanicWithError("insert", errors.New("oops"))
	}, "panic with error")
}

// without a channel the message goes to standard output
func TestPanicfUninitialised(t *testing.T) {
	assert.Panics(t, func() {
		fault.Panicf("no channel")
	}, "panic")
}
