// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"fmt"

	"github.com/bitmark-inc/propertystore/fault"
)

// NoNext - the sentinel id terminating every chain
const NoNext = ^uint64(0)

// Kind - the kind of a record, doubles as storage prefix
type Kind byte

// the record kinds
const (
	NodeKind         = Kind('N')
	RelationshipKind = Kind('R')
	PropertyKind     = Kind('P')
	StringKind       = Kind('S')
	ArrayKind        = Kind('A')
)

// Kinds - every record kind, in flush order
var Kinds = []Kind{NodeKind, RelationshipKind, PropertyKind, StringKind, ArrayKind}

// the flag bits
const (
	inUseFlag = 0x01
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	ID() uint64
	Kind() Kind
	InUse() bool
	SetInUse(bool)
	Pack() Packed
}

// Link - a record that is part of a singly or doubly linked chain
type Link interface {
	ID() uint64
	InUse() bool
	Next() uint64
}

// Owner - a record that has a property chain
type Owner interface {
	Record
	NextProperty() uint64
	SetNextProperty(uint64)
}

// String - name of the kind
func (k Kind) String() string {
	switch k {
	case NodeKind:
		return "node"
	case RelationshipKind:
		return "relationship"
	case PropertyKind:
		return "property"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	default:
		return fmt.Sprintf("kind(%d)", byte(k))
	}
}

// Valid - check for a known kind
func (k Kind) Valid() bool {
	for _, kind := range Kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// IsOwner - true for the kinds that can own a property chain
func (k Kind) IsOwner() bool {
	return NodeKind == k || RelationshipKind == k
}

// Size - the packed size of a record of this kind
func (k Kind) Size() int {
	switch k {
	case NodeKind:
		return nodeSize
	case RelationshipKind:
		return relationshipSize
	case PropertyKind:
		return propertySize
	case StringKind, ArrayKind:
		return dynamicSize
	default:
		return 0
	}
}

// New - an empty, not in use record of the given kind
func New(kind Kind, id uint64) (Record, error) {
	switch kind {
	case NodeKind:
		return NewNode(id), nil
	case RelationshipKind:
		return NewRelationship(id), nil
	case PropertyKind:
		return NewProperty(id), nil
	case StringKind, ArrayKind:
		return NewDynamic(kind, id), nil
	default:
		return nil, fault.ErrInvalidRecordKind
	}
}

// IDString - printable form of an id, showing the sentinel by name
func IDString(id uint64) string {
	if NoNext == id {
		return "none"
	}
	return fmt.Sprintf("%d", id)
}

func flags(inUse bool) byte {
	if inUse {
		return inUseFlag
	}
	return 0
}
