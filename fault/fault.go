// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ProcessError("already initialised")
	ErrConfigDirPath          = InvalidError("data directory is not a folder")
	ErrConfigurationNotATable = InvalidError("configuration did not return a table")
	ErrInvalidInteger         = InvalidError("input is not an integer")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidRemoveValue     = InvalidError("remove value is not an integer")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrMultipleConfigFiles    = InvalidError("only one config file is allowed")
	ErrNotFoundConfigFile     = NotFoundError("config file is not found")
	ErrNotFoundInputFile      = NotFoundError("input file is not found")
	ErrRequiredInputFile      = InvalidError("input file is required")
	ErrTooManyArguments       = InvalidError("too many arguments")
	ErrWatchedFileRemoved     = ProcessError("watched file was removed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
