// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/propertystore/fault"
	"github.com/bitmark-inc/propertystore/record"
)

// Cursor - ordered walk over the committed keys of one pool
type Cursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewCursor - a cursor over the whole key range of the pool
func (p *PoolHandle) NewCursor() *Cursor {
	return &Cursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Map - run a function on all elements in key order
//
// keys are passed without the pool prefix; an error from f stops the
// walk and is returned
func (cursor *Cursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}
	if nil == cursor.pool.dataAccess {
		return fault.ErrNotInitialised
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.maxRange)
	defer iter.Release()

	for iter.Next() {
		// iterator slices are only valid until the next call to Next
		key := append([]byte(nil), iter.Key()[1:]...)
		value := append([]byte(nil), iter.Value()...)

		if err := f(key, value); nil != err {
			return err
		}
	}
	return iter.Error()
}

// Scan - every stored record of a kind in id order, free or not
//
// a key or record that cannot be decoded stops the scan with its error
func (s *RecordStore) Scan(kind record.Kind, f func(r record.Record) error) error {
	pool, err := PoolOf(kind)
	if nil != err {
		return err
	}
	return pool.NewCursor().Map(func(key []byte, value []byte) error {
		id, err := RecordID(key)
		if nil != err {
			return err
		}
		r, err := record.Unpack(kind, id, value)
		if nil != err {
			return err
		}
		return f(r)
	})
}
