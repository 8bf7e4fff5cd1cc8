// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

// Package errs provides the typed error values of the chunkstack containers,
// which contain errcode errmsg.
package errs

import (
	"errors"
	"fmt"
)

// Container return code.
const (
	// RetOK means success.
	RetOK = 0
	// RetAllocationFailure is the error code for failures to obtain block
	// storage, including capacity arithmetic that would overflow.
	RetAllocationFailure = 1
	// RetPrecondition is the error code for calls that violate an operation
	// precondition, such as popping an empty stack.
	RetPrecondition = 2
	// RetUnknown is the error code for errors not created by this package.
	RetUnknown = 999
)

// Err container error value.
var (
	// ErrInvalidSize is the error of a non-positive initial size or item size.
	ErrInvalidSize = New(RetPrecondition, "initial size and item size must be positive")
	// ErrNilStack is the error of an operation on a nil stack handle.
	ErrNilStack = New(RetPrecondition, "nil stack handle")
	// ErrClosed is the error of an operation on an already closed stack.
	ErrClosed = New(RetPrecondition, "stack is closed")
	// ErrPopEmpty is the error of popping an empty stack.
	ErrPopEmpty = New(RetPrecondition, "pop from empty stack")
	// ErrItemSize is the error of an item or destination buffer whose length
	// does not match the stack's fixed item size.
	ErrItemSize = New(RetPrecondition, "item length does not match stack item size")
	// ErrCapacityOverflow is the error of a block capacity computation that
	// would overflow instead of growing.
	ErrCapacityOverflow = New(RetAllocationFailure, "block capacity overflow")
)

const (
	// Success is the success prompt string.
	Success = "success"
)

// Error is the error code structure which contains error code and error message.
type Error struct {
	Code int32
	Msg  string

	cause error // internal error, forms the error chain.
}

// Error implements the error interface and returns the error description.
func (e *Error) Error() string {
	if e == nil {
		return Success
	}
	if e.cause != nil {
		return fmt.Sprintf("code:%d, msg:%s, caused by %s", e.Code, e.Msg, e.cause.Error())
	}
	return fmt.Sprintf("code:%d, msg:%s", e.Code, e.Msg)
}

// Unwrap support Go 1.13+ error chains.
func (e *Error) Unwrap() error { return e.cause }

// New creates an error with the given code and message.
func New(code int32, msg string) error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// Newf creates an error, msg supports format strings.
func Newf(code int32, format string, params ...interface{}) error {
	return &Error{
		Code: code,
		Msg:  fmt.Sprintf(format, params...),
	}
}

// Wrap creates a new error which wraps err as the cause.
func Wrap(err error, code int32, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf is like Wrap, msg supports format strings.
func Wrapf(err error, code int32, format string, params ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:  code,
		Msg:   fmt.Sprintf(format, params...),
		cause: err,
	}
}

// Code gets the error code through the error.
func Code(e error) int32 {
	if e == nil {
		return RetOK
	}
	err, ok := e.(*Error)
	if !ok && !errors.As(e, &err) {
		return RetUnknown
	}
	if err == nil {
		return RetOK
	}
	return err.Code
}

// Msg gets the error message through the error.
func Msg(e error) string {
	if e == nil {
		return Success
	}
	err, ok := e.(*Error)
	if !ok && !errors.As(e, &err) {
		return e.Error()
	}
	if err == nil {
		return Success
	}
	return err.Msg
}
