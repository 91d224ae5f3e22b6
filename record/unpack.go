// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/propertystore/fault"
)

// Unpack - turn a stored byte slice back into a record
func Unpack(kind Kind, id uint64, record Packed) (Record, error) {
	if !kind.Valid() {
		return nil, fault.ErrInvalidRecordKind
	}
	if len(record) != kind.Size() {
		return nil, fault.ErrRecordSize
	}

	switch kind {
	case NodeKind:
		return unpackNode(id, record), nil
	case RelationshipKind:
		return unpackRelationship(id, record), nil
	case PropertyKind:
		return unpackProperty(id, record), nil
	default:
		return unpackDynamic(kind, id, record), nil
	}
}
