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
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccessSetClosed        = ProcessError("record access set is already closed")
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrBatchInUse             = ProcessError("batch already in use")
	ErrBatchNotInUse          = ProcessError("batch is not in use")
	ErrConfigurationNotTable  = InvalidError("configuration file did not return a table")
	ErrInconsistentChain      = RecordError("chain is inconsistent")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidCursor          = InvalidError("invalid cursor")
	ErrInvalidKey             = InvalidError("invalid property key")
	ErrInvalidRecordId        = InvalidError("invalid record id")
	ErrInvalidRecordKind      = InvalidError("invalid record kind")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidValue           = InvalidError("invalid property value")
	ErrMissingValueRecords    = RecordError("missing value records")
	ErrNotInitialised         = NotFoundError("not initialised")
	ErrNotOwnerRecord         = InvalidError("record kind cannot own properties")
	ErrPropertyNotFound       = NotFoundError("property not found")
	ErrRecordFull             = LengthError("property record has no free block")
	ErrRecordSize             = RecordError("record size is invalid")
	ErrTruncatedValue         = LengthError("value is truncated")
	ErrUnknownPropertyType    = RecordError("unknown property type")
	ErrValueRecordTypeInvalid = RecordError("value record type does not match block")
	ErrValueTooLarge          = LengthError("value is too large")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
