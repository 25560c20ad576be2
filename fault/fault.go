// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBlackHeightMismatch  = InvariantError("black height differs between paths")
	ErrConfigurationNoTable = InvalidError("configuration did not return a table")
	ErrCountMismatch        = InvariantError("node count does not match tree size")
	ErrDataDirectory        = InvalidError("data directory is not valid")
	ErrDecrementPastBegin   = InvalidError("decrement past first item")
	ErrDereferenceEnd       = InvalidError("dereference of end iterator")
	ErrEraseEnd             = InvalidError("erase of end iterator")
	ErrForeignIterator      = InvalidError("iterator belongs to a different tree")
	ErrIncrementPastEnd     = InvalidError("increment past end")
	ErrInvalidCommand       = InvalidError("invalid command")
	ErrInvalidKey           = InvalidError("invalid key")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidOrder         = InvalidError("order must be ascending or descending")
	ErrInvalidPlainName     = InvalidError("file name must not contain a path")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrMissingArgument      = InvalidError("missing argument")
	ErrNotADirectory        = InvalidError("path is not a directory")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrOrderViolation       = InvariantError("keys out of search order")
	ErrParentLink           = InvariantError("parent link does not match child link")
	ErrRedRoot              = InvariantError("root is red")
	ErrRedSentinel          = InvariantError("sentinel is red")
	ErrRedWithRedChild      = InvariantError("red node has a red child")
	ErrRotateWithoutChild   = InvalidError("rotation requires the promoted child")
	ErrStaleIterator        = InvalidError("iterator refers to an erased item")
	ErrTransplantSentinel   = InvalidError("transplant of sentinel position")
	ErrTreeFull             = ProcessError("tree node storage exhausted")
	ErrUnreachableIterator  = InvalidError("iterator is not reachable from start")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrInvariant(e error) bool { _, ok := e.(InvariantError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
