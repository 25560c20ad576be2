// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// last-chance channel name
const panicChannel = "PANIC"

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(panicChannel)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Criticalf - log a formatted string prefixed by the caller's position
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf(withCaller(2, format, arguments))
}

// Panicf - log a formatted message then panic
//
// the value passed to panic is the formatted message without the
// caller prefix so that recover() sees a stable string
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	internalCriticalf(withCaller(2, "%s", []interface{}{message}))
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(message)
}

// PanicWithError - final panic for an operation that returned an error
func PanicWithError(message string, err error) {
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf("%s", []interface{}{s})
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(s)
}

// prefix a format with "file:line" of the caller skip frames up
func withCaller(skip int, format string, arguments []interface{}) (string, []interface{}) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return format, arguments
	}
	a := make([]interface{}, 2, 2+len(arguments))
	a[0] = file
	a[1] = line
	a = append(a, arguments...)
	return "(%q:%d) " + format, a
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments []interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
