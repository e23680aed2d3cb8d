// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

var (
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that the error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrInvalidOne, true, false, false},
		{ErrInvalidTwo, true, false, false},
		{ErrNotFoundOne, false, true, false},
		{ErrNotFoundTwo, false, true, false},
		{ErrProcessOne, false, false, true},
		{ErrProcessTwo, false, false, true},
		{fault.ErrNotFoundInputFile, false, true, false},
		{fault.ErrInvalidInteger, true, false, false},
		{errors.New("plain"), false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestErrorText(t *testing.T) {
	assert.Equal(t, "invalid one", ErrInvalidOne.Error(), "text")
	assert.Equal(t, "generic", fault.GenericError("generic").Error(), "text")
}

func TestPanicWithoutLogger(t *testing.T) {
	assert.PanicsWithValue(t, "stop here", func() { fault.Panic("stop here") }, "panic")
	assert.PanicsWithValue(t, "value: 7", func() { fault.Panicf("value: %d", 7) }, "panicf")
	assert.PanicsWithValue(t, "read failed with error: bad", func() {
		fault.PanicIfError("read", errors.New("bad"))
	}, "panic if error")
	assert.NotPanics(t, func() { fault.PanicIfError("read", nil) }, "nil error")
}
