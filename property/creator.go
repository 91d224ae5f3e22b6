// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

import (
	"github.com/bitmark-inc/propertystore/fault"
	"github.com/bitmark-inc/propertystore/record"
	"github.com/bitmark-inc/propertystore/recordaccess"
	"github.com/bitmark-inc/propertystore/values"
)

// Creator - build and extend property chains
type Creator struct {
	encoder   *Encoder
	traverser *Traverser
}

// NewCreator - create a creator
func NewCreator() *Creator {
	return &Creator{
		encoder:   &Encoder{},
		traverser: NewTraverser(),
	}
}

// CreatePropertyChain - write blocks into a new chain, returning its
// first record id
//
// blocks are packed BlocksPerRecord to a record in the given order;
// no blocks gives NoNext
func (c *Creator) CreatePropertyChain(blocks []record.PropertyBlock, changes *recordaccess.Set) (uint64, error) {
	if 0 == len(blocks) {
		return record.NoNext, nil
	}

	properties := changes.Properties()

	var previous *record.PropertyRecord
	first := record.NoNext
	for len(blocks) > 0 {
		id, err := properties.NextID()
		if nil != err {
			return record.NoNext, err
		}
		p, err := properties.Create(id)
		if nil != err {
			return record.NoNext, err
		}

		n := len(blocks)
		if n > record.BlocksPerRecord {
			n = record.BlocksPerRecord
		}
		for _, block := range blocks[:n] {
			if err := p.AddBlock(block); nil != err {
				return record.NoNext, err
			}
		}
		blocks = blocks[n:]

		if nil == previous {
			first = id
		} else {
			previous.NextProp = id
			p.PrevProp = previous.ID()
		}
		previous = p
	}
	return first, nil
}

// SetProperty - add a key to an owner or replace its value
//
// a replaced dynamic value has its value chain freed; a new key goes
// into the first record of the chain, or into a new first record if
// that one is full
func (c *Creator) SetProperty(owner record.Owner, key uint32, value values.Value, changes *recordaccess.Set) error {
	properties := changes.Properties()

	existing, err := c.traverser.FindPropertyRecordContaining(owner, key, changes)
	switch err {
	case nil:
		p, err := properties.Change(existing.ID())
		if nil != err {
			return err
		}
		old := p.FindBlock(key)
		if old.IsDynamic() {
			_, _, err := freeValueChain(old, changes)
			if nil != err {
				return err
			}
		}
		block, err := c.encoder.EncodeValue(key, value, changes)
		if nil != err {
			return err
		}
		*old = block
		return nil

	case fault.ErrPropertyNotFound:
	default:
		return err
	}

	block, err := c.encoder.EncodeValue(key, value, changes)
	if nil != err {
		return err
	}

	head := owner.NextProperty()
	if record.NoNext != head {
		p, err := properties.Change(head)
		if nil != err {
			return err
		}
		if nil == p.AddBlock(block) {
			return nil
		}
	}

	id, err := properties.NextID()
	if nil != err {
		return err
	}
	p, err := properties.Create(id)
	if nil != err {
		return err
	}
	if err := p.AddBlock(block); nil != err {
		return err
	}
	p.NextProp = head
	if record.NoNext != head {
		next, err := properties.Change(head)
		if nil != err {
			return err
		}
		next.PrevProp = id
	}

	owner.SetNextProperty(id)
	return stageOwner(owner, changes)
}

func stageOwner(owner record.Owner, changes *recordaccess.Set) error {
	owners, err := changes.Owners(owner.Kind())
	if nil != err {
		return err
	}
	return owners.Stage(owner)
}
