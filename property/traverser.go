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

// Traverser - read only walks over property and value chains
type Traverser struct {
	decoder *Decoder
}

// Property - one key of an owner with its value or the reason it
// could not be read
type Property struct {
	Key   uint32
	Value values.Value
	Err   error
}

// NewTraverser - create a traverser
func NewTraverser() *Traverser {
	return &Traverser{
		decoder: &Decoder{},
	}
}

// PropertyChain - walker over the property records starting at start
func (t *Traverser) PropertyChain(start uint64, changes *recordaccess.Set) *chain.Walker {
	return chain.New(start, changes.Properties().Link)
}

// ValueChain - walker over the value records of a dynamic block
func (t *Traverser) ValueChain(block *record.PropertyBlock, changes *recordaccess.Set) (*chain.Walker, error) {
	dynamic, err := changes.Dynamic(block.DynamicKind())
	if nil != err {
		return nil, err
	}
	return chain.New(block.ValueStart(), dynamic.Link), nil
}

// FindPropertyRecordContaining - the property record holding a key
//
// returns ErrPropertyNotFound if the chain ends without the key and
// ErrInconsistentChain if the walk hit a cycle or an unused record
// before finding it
func (t *Traverser) FindPropertyRecordContaining(owner record.Owner, key uint32, changes *recordaccess.Set) (*record.PropertyRecord, error) {
	w := t.PropertyChain(owner.NextProperty(), changes)
	for w.Next() {
		p := w.Record().(*record.PropertyRecord)
		if nil != p.FindBlock(key) {
			return p, nil
		}
	}
	if err := w.Err(); nil != err {
		return nil, err
	}
	if nil != w.Inconsistency() {
		return nil, fault.ErrInconsistentChain
	}
	return nil, fault.ErrPropertyNotFound
}

// Properties - every key of an owner in chain order
//
// a value whose chain is damaged is reported in Property.Err, a
// damaged property chain returns what was read together with
// ErrInconsistentChain
func (t *Traverser) Properties(owner record.Owner, changes *recordaccess.Set) ([]Property, error) {
	var properties []Property

	w := t.PropertyChain(owner.NextProperty(), changes)
	for w.Next() {
		p := w.Record().(*record.PropertyRecord)
		for i := range p.Blocks {
			block := &p.Blocks[i]
			value, err := t.decoder.Resolve(block, changes)
			properties = append(properties, Property{
				Key:   block.Key,
				Value: value,
				Err:   err,
			})
		}
	}
	if err := w.Err(); nil != err {
		return nil, err
	}
	if nil != w.Inconsistency() {
		return properties, fault.ErrInconsistentChain
	}
	return properties, nil
}

// GetProperty - the value of one key
func (t *Traverser) GetProperty(owner record.Owner, key uint32, changes *recordaccess.Set) (values.Value, error) {
	p, err := t.FindPropertyRecordContaining(owner, key, changes)
	if nil != err {
		return nil, err
	}
	return t.decoder.Resolve(p.FindBlock(key), changes)
}
