// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

import (
	"github.com/bitmark-inc/propertystore/chain"
	"github.com/bitmark-inc/propertystore/fault"
	"github.com/bitmark-inc/propertystore/record"
	"github.com/bitmark-inc/propertystore/recordaccess"
	"github.com/bitmark-inc/propertystore/values"
)

// Decoder - turn blocks back into values
type Decoder struct{}

// Decode - the value of a block
//
// dynamic blocks need the records of their value chain in order
func (d *Decoder) Decode(block *record.PropertyBlock, valueRecords []*record.DynamicRecord) (values.Value, error) {
	switch block.Type {
	case record.BoolType, record.IntType, record.FloatType, record.ShortStringType:
		return values.Unpack(block.Type, block.Inline())

	case record.StringType, record.ArrayType:
		if 0 == len(valueRecords) {
			return nil, fault.ErrMissingValueRecords
		}
		size := 0
		for _, r := range valueRecords {
			if r.Type() != block.Type {
				return nil, fault.ErrValueRecordTypeInvalid
			}
			size += len(r.Data)
		}
		data := make([]byte, 0, size)
		for _, r := range valueRecords {
			data = append(data, r.Data...)
		}
		return values.Unpack(block.Type, data)

	default:
		return nil, fault.ErrUnknownPropertyType
	}
}

// Resolve - the value of a block, reading its value chain if needed
func (d *Decoder) Resolve(block *record.PropertyBlock, changes *recordaccess.Set) (values.Value, error) {
	if !block.IsDynamic() {
		return d.Decode(block, nil)
	}

	dynamic, err := changes.Dynamic(block.DynamicKind())
	if nil != err {
		return nil, err
	}

	links, inconsistency, err := chain.New(block.ValueStart(), dynamic.Link).Collect()
	if nil != err {
		return nil, err
	}
	if nil != inconsistency {
		return nil, fault.ErrInconsistentChain
	}
	return d.Decode(block, dynamicRecords(links))
}

func dynamicRecords(links []record.Link) []*record.DynamicRecord {
	result := make([]*record.DynamicRecord, len(links))
	for i, l := range links {
		result[i] = l.(*record.DynamicRecord)
	}
	return result
}
