// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/bitmark-inc/propertystore/fault"
)

// PropertyType - tag of a property block
type PropertyType byte

// the property types, NoType marks an empty block slot
const (
	NoType          = PropertyType(0)
	BoolType        = PropertyType(1)
	IntType         = PropertyType(2)
	FloatType       = PropertyType(3)
	ShortStringType = PropertyType(4)
	StringType      = PropertyType(5)
	ArrayType       = PropertyType(6)
)

// property record dimensions
const (
	BlocksPerRecord   = 4
	InlinePayloadSize = 8

	keySize       = 4
	typeSize      = 1
	blockSizeSize = 1
	blockSize     = keySize + typeSize + blockSizeSize + InlinePayloadSize

	propPrevOffset   = flagsSize
	propNextOffset   = propPrevOffset + idSize
	propBlocksOffset = propNextOffset + idSize

	propertySize = propBlocksOffset + BlocksPerRecord*blockSize
)

func (t PropertyType) String() string {
	switch t {
	case NoType:
		return "none"
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case ShortStringType:
		return "short-string"
	case StringType:
		return "string"
	case ArrayType:
		return "array"
	default:
		return fmt.Sprintf("type(%d)", byte(t))
	}
}

// PropertyBlock - one key/value slot of a property record
//
// dynamic blocks keep the id of the first value record in the
// payload, ValueRecords is only filled in by readers and writers and
// is never packed
type PropertyBlock struct {
	Key     uint32
	Type    PropertyType
	Size    uint8
	Payload [InlinePayloadSize]byte

	ValueRecords []*DynamicRecord
}

// IsDynamic - true if the value lives in a dynamic record chain
func (b *PropertyBlock) IsDynamic() bool {
	return StringType == b.Type || ArrayType == b.Type
}

// DynamicKind - the record kind of the value chain
func (b *PropertyBlock) DynamicKind() Kind {
	switch b.Type {
	case StringType:
		return StringKind
	case ArrayType:
		return ArrayKind
	default:
		return 0
	}
}

// ValueStart - first record of the value chain
func (b *PropertyBlock) ValueStart() uint64 {
	return binary.BigEndian.Uint64(b.Payload[:])
}

// SetValueStart - link the block to its value chain
func (b *PropertyBlock) SetValueStart(id uint64) {
	binary.BigEndian.PutUint64(b.Payload[:], id)
	b.Size = idSize
}

// Inline - the inline payload bytes
func (b *PropertyBlock) Inline() []byte {
	size := int(b.Size)
	if size > InlinePayloadSize {
		size = InlinePayloadSize
	}
	return b.Payload[:size]
}

// SetInline - store an inline payload
func (b *PropertyBlock) SetInline(data []byte) error {
	if len(data) > InlinePayloadSize {
		return fault.ErrValueTooLarge
	}
	b.Payload = [InlinePayloadSize]byte{}
	copy(b.Payload[:], data)
	b.Size = uint8(len(data))
	return nil
}

func (b *PropertyBlock) String() string {
	if b.IsDynamic() {
		return fmt.Sprintf("%d:%s@%s", b.Key, b.Type, IDString(b.ValueStart()))
	}
	return fmt.Sprintf("%d:%s[%x]", b.Key, b.Type, b.Inline())
}

// PropertyRecord - one link of a doubly linked property chain
type PropertyRecord struct {
	id    uint64
	inUse bool

	PrevProp uint64
	NextProp uint64
	Blocks   []PropertyBlock
}

// NewProperty - an unused, unlinked and empty property record
func NewProperty(id uint64) *PropertyRecord {
	return &PropertyRecord{
		id:       id,
		PrevProp: NoNext,
		NextProp: NoNext,
	}
}

func (p *PropertyRecord) ID() uint64          { return p.id }
func (p *PropertyRecord) Kind() Kind          { return PropertyKind }
func (p *PropertyRecord) InUse() bool         { return p.inUse }
func (p *PropertyRecord) SetInUse(inUse bool) { p.inUse = inUse }
func (p *PropertyRecord) Next() uint64        { return p.NextProp }

// AddBlock - append a block if a slot is free
func (p *PropertyRecord) AddBlock(block PropertyBlock) error {
	if len(p.Blocks) >= BlocksPerRecord {
		return fault.ErrRecordFull
	}
	p.Blocks = append(p.Blocks, block)
	return nil
}

// FindBlock - the block for a key or nil
func (p *PropertyRecord) FindBlock(key uint32) *PropertyBlock {
	for i := range p.Blocks {
		if key == p.Blocks[i].Key {
			return &p.Blocks[i]
		}
	}
	return nil
}

// RemoveBlock - detach the block for a key
func (p *PropertyRecord) RemoveBlock(key uint32) (PropertyBlock, bool) {
	for i, block := range p.Blocks {
		if key == block.Key {
			p.Blocks = append(p.Blocks[:i:i], p.Blocks[i+1:]...)
			return block, true
		}
	}
	return PropertyBlock{}, false
}

// ClearBlocks - empty every slot
func (p *PropertyRecord) ClearBlocks() {
	p.Blocks = nil
}

// Pack - fixed size binary form, unused slots are zero
func (p *PropertyRecord) Pack() Packed {
	buffer := make(Packed, propertySize)
	buffer[0] = flags(p.inUse)
	binary.BigEndian.PutUint64(buffer[propPrevOffset:], p.PrevProp)
	binary.BigEndian.PutUint64(buffer[propNextOffset:], p.NextProp)

	for i, block := range p.Blocks {
		if i >= BlocksPerRecord {
			break
		}
		n := propBlocksOffset + i*blockSize
		binary.BigEndian.PutUint32(buffer[n:], block.Key)
		n += keySize
		buffer[n] = byte(block.Type)
		n += typeSize
		buffer[n] = block.Size
		n += blockSizeSize
		copy(buffer[n:n+InlinePayloadSize], block.Payload[:])
	}
	return buffer
}

func (p *PropertyRecord) String() string {
	blocks := make([]string, len(p.Blocks))
	for i := range p.Blocks {
		blocks[i] = p.Blocks[i].String()
	}
	return fmt.Sprintf("Property[%d,used=%t,prev=%s,next=%s,blocks={%s}]",
		p.id, p.inUse, IDString(p.PrevProp), IDString(p.NextProp), strings.Join(blocks, " "))
}

func unpackProperty(id uint64, record Packed) *PropertyRecord {
	p := &PropertyRecord{
		id:       id,
		inUse:    0 != record[0]&inUseFlag,
		PrevProp: binary.BigEndian.Uint64(record[propPrevOffset:]),
		NextProp: binary.BigEndian.Uint64(record[propNextOffset:]),
	}
	for i := 0; i < BlocksPerRecord; i += 1 {
		n := propBlocksOffset + i*blockSize
		block := PropertyBlock{
			Key: binary.BigEndian.Uint32(record[n:]),
		}
		n += keySize
		block.Type = PropertyType(record[n])
		n += typeSize
		block.Size = record[n]
		n += blockSizeSize
		copy(block.Payload[:], record[n:n+InlinePayloadSize])

		if NoType != block.Type {
			p.Blocks = append(p.Blocks, block)
		}
	}
	return p
}
