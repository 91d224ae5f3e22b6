// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

import (
	"github.com/bitmark-inc/propertystore/record"
	"github.com/bitmark-inc/propertystore/recordaccess"
	"github.com/bitmark-inc/propertystore/values"
)

// Encoder - turn values into blocks
type Encoder struct{}

// EncodeValue - a block for key holding value
//
// values that do not fit the block are written to a new value chain
// created in changes; the chain is listed in the block's ValueRecords
func (e *Encoder) EncodeValue(key uint32, value values.Value, changes *recordaccess.Set) (record.PropertyBlock, error) {
	propType, data, err := values.Pack(value)
	if nil != err {
		return record.PropertyBlock{}, err
	}

	block := record.PropertyBlock{
		Key:  key,
		Type: propType,
	}
	if !block.IsDynamic() {
		err = block.SetInline(data)
		return block, err
	}

	dynamic, err := changes.Dynamic(block.DynamicKind())
	if nil != err {
		return record.PropertyBlock{}, err
	}

	// an empty value still takes one record
	count := (len(data) + record.DynamicPayloadSize - 1) / record.DynamicPayloadSize
	if 0 == count {
		count = 1
	}

	ids := make([]uint64, count)
	for i := range ids {
		ids[i], err = dynamic.NextID()
		if nil != err {
			return record.PropertyBlock{}, err
		}
	}

	block.ValueRecords = make([]*record.DynamicRecord, count)
	for i, id := range ids {
		r, err := dynamic.Create(id)
		if nil != err {
			return record.PropertyBlock{}, err
		}
		if i+1 < count {
			r.NextBlock = ids[i+1]
		}
		n := len(data)
		if n > record.DynamicPayloadSize {
			n = record.DynamicPayloadSize
		}
		r.Data = data[:n:n]
		data = data[n:]
		block.ValueRecords[i] = r
	}

	block.SetValueStart(ids[0])
	return block, nil
}
