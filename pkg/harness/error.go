/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package harness defines the error taxonomy shared by the backchannel core.
package harness

import (
	"errors"
	"fmt"
)

// ErrorType classifies a backchannel failure.
type ErrorType int

// Error types surfaced by the backchannel core.
const (
	// NotFound - a referenced connection or session does not exist.
	NotFound ErrorType = iota
	// Internal - required ambient state is missing (eg. no default connection).
	Internal
	// Configuration - malformed credential-definition or preview input.
	Configuration
	// Transport - send/receive failure on the connection gateway.
	Transport
	// Protocol - peer-visible protocol violation, reported via problem report.
	Protocol
)

// String returns the wire name of the error type.
func (t ErrorType) String() string {
	switch t {
	case NotFound:
		return "not-found"
	case Internal:
		return "internal"
	case Configuration:
		return "configuration"
	case Transport:
		return "transport"
	case Protocol:
		return "protocol"
	}

	return "unknown"
}

// Error is a typed backchannel error.
type Error struct {
	Type  ErrorType
	msg   string
	cause error
}

// NewError returns a typed error with the given message.
func NewError(typ ErrorType, format string, args ...interface{}) *Error {
	return &Error{Type: typ, msg: fmt.Sprintf(format, args...)}
}

// WrapError returns a typed error wrapping cause.
func WrapError(typ ErrorType, cause error, format string, args ...interface{}) *Error {
	return &Error{Type: typ, msg: fmt.Sprintf(format, args...), cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s : %s", e.msg, e.cause.Error())
	}

	return e.msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// TypeOf returns the error type carried by err, defaulting to Internal for
// untyped errors.
func TypeOf(err error) ErrorType {
	var typed *Error

	if errors.As(err, &typed) {
		return typed.Type
	}

	return Internal
}

// IsType reports whether err carries the given error type.
func IsType(err error, typ ErrorType) bool {
	var typed *Error

	return errors.As(err, &typed) && typed.Type == typ
}
