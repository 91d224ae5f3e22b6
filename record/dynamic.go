// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"fmt"
)

// DynamicPayloadSize - data bytes carried by one dynamic record
const DynamicPayloadSize = 120

const (
	lengthSize = 2

	dynTypeOffset   = flagsSize
	dynLengthOffset = dynTypeOffset + typeSize
	dynNextOffset   = dynLengthOffset + lengthSize
	dynDataOffset   = dynNextOffset + idSize

	dynamicSize = dynDataOffset + DynamicPayloadSize
)

// DynamicRecord - one link of a string or array value chain
type DynamicRecord struct {
	id    uint64
	kind  Kind
	inUse bool

	NextBlock uint64
	Data      []byte
}

// NewDynamic - an unused dynamic record of a string or array kind
func NewDynamic(kind Kind, id uint64) *DynamicRecord {
	return &DynamicRecord{
		id:        id,
		kind:      kind,
		NextBlock: NoNext,
	}
}

func (d *DynamicRecord) ID() uint64          { return d.id }
func (d *DynamicRecord) Kind() Kind          { return d.kind }
func (d *DynamicRecord) InUse() bool         { return d.inUse }
func (d *DynamicRecord) SetInUse(inUse bool) { d.inUse = inUse }
func (d *DynamicRecord) Next() uint64        { return d.NextBlock }

// Type - the property type whose values this record carries
func (d *DynamicRecord) Type() PropertyType {
	switch d.kind {
	case StringKind:
		return StringType
	case ArrayKind:
		return ArrayType
	default:
		return NoType
	}
}

// Pack - fixed size binary form, data beyond the payload size is dropped
func (d *DynamicRecord) Pack() Packed {
	buffer := make(Packed, dynamicSize)
	buffer[0] = flags(d.inUse)
	buffer[dynTypeOffset] = byte(d.Type())
	n := copy(buffer[dynDataOffset:], d.Data)
	binary.BigEndian.PutUint16(buffer[dynLengthOffset:], uint16(n))
	binary.BigEndian.PutUint64(buffer[dynNextOffset:], d.NextBlock)
	return buffer
}

func (d *DynamicRecord) String() string {
	return fmt.Sprintf("Dynamic[%s:%d,used=%t,next=%s,length=%d]",
		d.kind, d.id, d.inUse, IDString(d.NextBlock), len(d.Data))
}

func unpackDynamic(kind Kind, id uint64, record Packed) *DynamicRecord {
	length := int(binary.BigEndian.Uint16(record[dynLengthOffset:]))
	if length > DynamicPayloadSize {
		length = DynamicPayloadSize
	}
	data := make([]byte, length)
	copy(data, record[dynDataOffset:])

	return &DynamicRecord{
		id:        id,
		kind:      kind,
		inUse:     0 != record[0]&inUseFlag,
		NextBlock: binary.BigEndian.Uint64(record[dynNextOffset:]),
		Data:      data,
	}
}
