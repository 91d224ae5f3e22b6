// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"fmt"
)

// byte sizes for the owner records
const (
	flagsSize   = 1
	idSize      = 8
	relTypeSize = 4

	nodeSize         = flagsSize + idSize
	relationshipSize = flagsSize + idSize + idSize + relTypeSize + idSize
)

// offsets of the relationship fields
const (
	relFirstNodeOffset    = flagsSize
	relSecondNodeOffset   = relFirstNodeOffset + idSize
	relTypeOffset         = relSecondNodeOffset + idSize
	relNextPropertyOffset = relTypeOffset + relTypeSize
)

// NodeRecord - a node, only its property chain head is stored here
type NodeRecord struct {
	id           uint64
	inUse        bool
	nextProperty uint64
}

// NewNode - an unused node with an empty property chain
func NewNode(id uint64) *NodeRecord {
	return &NodeRecord{
		id:           id,
		nextProperty: NoNext,
	}
}

func (n *NodeRecord) ID() uint64                 { return n.id }
func (n *NodeRecord) Kind() Kind                 { return NodeKind }
func (n *NodeRecord) InUse() bool                { return n.inUse }
func (n *NodeRecord) SetInUse(inUse bool)        { n.inUse = inUse }
func (n *NodeRecord) NextProperty() uint64       { return n.nextProperty }
func (n *NodeRecord) SetNextProperty(id uint64) { n.nextProperty = id }

// Pack - fixed size binary form
func (n *NodeRecord) Pack() Packed {
	buffer := make(Packed, nodeSize)
	buffer[0] = flags(n.inUse)
	binary.BigEndian.PutUint64(buffer[flagsSize:], n.nextProperty)
	return buffer
}

func (n *NodeRecord) String() string {
	return fmt.Sprintf("Node[%d,used=%t,prop=%s]", n.id, n.inUse, IDString(n.nextProperty))
}

// RelationshipRecord - a relationship between two nodes
type RelationshipRecord struct {
	id           uint64
	inUse        bool
	nextProperty uint64

	FirstNode  uint64
	SecondNode uint64
	Type       uint32
}

// NewRelationship - an unused relationship with an empty property chain
func NewRelationship(id uint64) *RelationshipRecord {
	return &RelationshipRecord{
		id:           id,
		nextProperty: NoNext,
		FirstNode:    NoNext,
		SecondNode:   NoNext,
	}
}

func (r *RelationshipRecord) ID() uint64                 { return r.id }
func (r *RelationshipRecord) Kind() Kind                 { return RelationshipKind }
func (r *RelationshipRecord) InUse() bool                { return r.inUse }
func (r *RelationshipRecord) SetInUse(inUse bool)        { r.inUse = inUse }
func (r *RelationshipRecord) NextProperty() uint64       { return r.nextProperty }
func (r *RelationshipRecord) SetNextProperty(id uint64) { r.nextProperty = id }

// Pack - fixed size binary form
func (r *RelationshipRecord) Pack() Packed {
	buffer := make(Packed, relationshipSize)
	buffer[0] = flags(r.inUse)
	binary.BigEndian.PutUint64(buffer[relFirstNodeOffset:], r.FirstNode)
	binary.BigEndian.PutUint64(buffer[relSecondNodeOffset:], r.SecondNode)
	binary.BigEndian.PutUint32(buffer[relTypeOffset:], r.Type)
	binary.BigEndian.PutUint64(buffer[relNextPropertyOffset:], r.nextProperty)
	return buffer
}

func (r *RelationshipRecord) String() string {
	return fmt.Sprintf("Relationship[%d,used=%t,type=%d,first=%s,second=%s,prop=%s]",
		r.id, r.inUse, r.Type, IDString(r.FirstNode), IDString(r.SecondNode), IDString(r.nextProperty))
}

func unpackNode(id uint64, record Packed) *NodeRecord {
	return &NodeRecord{
		id:           id,
		inUse:        0 != record[0]&inUseFlag,
		nextProperty: binary.BigEndian.Uint64(record[flagsSize:]),
	}
}

func unpackRelationship(id uint64, record Packed) *RelationshipRecord {
	return &RelationshipRecord{
		id:           id,
		inUse:        0 != record[0]&inUseFlag,
		nextProperty: binary.BigEndian.Uint64(record[relNextPropertyOffset:]),
		FirstNode:    binary.BigEndian.Uint64(record[relFirstNodeOffset:]),
		SecondNode:   binary.BigEndian.Uint64(record[relSecondNodeOffset:]),
		Type:         binary.BigEndian.Uint32(record[relTypeOffset:]),
	}
}
