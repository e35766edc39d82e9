/*
 * RDFStore
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package util contains utility classes for the statement store.

StoreError

Models a store related error. All failures of store operations are
reported as StoreError values; the Type attribute holds one of the
error type values below and is to be used for equal checks.
*/
package util

import (
	"errors"
	"fmt"
)

/*
StoreError is a statement store related error
*/
type StoreError struct {
	Type   error  // Error type (to be used for equal checks)
	Detail string // Details of this error
}

/*
Error returns a human-readable string representation of this error.
*/
func (se *StoreError) Error() string {
	if se.Detail != "" {
		return fmt.Sprintf("StoreError: %v (%v)", se.Type, se.Detail)
	}

	return fmt.Sprintf("StoreError: %v", se.Type)
}

/*
Index management related error types
*/
var (
	ErrIndexExists  = errors.New("Index exists already")
	ErrUnknownIndex = errors.New("Index does not exist")
	ErrDefaultIndex = errors.New("Cannot remove default index")
	ErrNotAllocated = errors.New("Failed to allocate memory")
)

/*
Statement related error types
*/
var (
	ErrDuplicate        = errors.New("Statement exists already")
	ErrInvalidStatement = errors.New("Invalid statement")
	ErrUnresolvedNode   = errors.New("Node cannot be stored as-is")
	ErrStaleCursor      = errors.New("Cursor was invalidated by a mutation")
	ErrEndOfCursor      = errors.New("Cursor is at the end of its scan")
)

/*
NewStoreError creates a new StoreError of a given type.
*/
func NewStoreError(t error, detail string) *StoreError {
	return &StoreError{t, detail}
}

/*
IsError returns if a given error is a StoreError of a given type.
*/
func IsError(err error, t error) bool {
	if se, ok := err.(*StoreError); ok {
		return se.Type == t
	}

	return false
}
