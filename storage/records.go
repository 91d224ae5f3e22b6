// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/propertystore/fault"
	"github.com/bitmark-inc/propertystore/record"
)

// RecordStore - fixed size records kept in the kind's pool
//
// keys are big endian record ids, the id counter of each kind is kept
// in the NextID pool under the kind byte
type RecordStore struct {
	sync.Mutex
}

// NewRecordStore - record access over the initialised pools
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// RecordKey - pool key of a record id
func RecordKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// RecordID - record id of a pool key
func RecordID(key []byte) (uint64, error) {
	if 8 != len(key) {
		return 0, fault.ErrInvalidKey
	}
	return binary.BigEndian.Uint64(key), nil
}

// PoolOf - the pool holding a record kind
func PoolOf(kind record.Kind) (*PoolHandle, error) {
	var p *PoolHandle
	switch kind {
	case record.NodeKind:
		p = Pool.Nodes
	case record.RelationshipKind:
		p = Pool.Relationships
	case record.PropertyKind:
		p = Pool.Properties
	case record.StringKind:
		p = Pool.Strings
	case record.ArrayKind:
		p = Pool.Arrays
	default:
		return nil, fault.ErrInvalidRecordKind
	}
	if nil == p {
		return nil, fault.ErrNotInitialised
	}
	return p, nil
}

// Read - fetch one record
//
// an id that was never written reads as an empty unused record
func (s *RecordStore) Read(kind record.Kind, id uint64) (record.Record, error) {
	if record.NoNext == id {
		return nil, fault.ErrInvalidRecordId
	}
	pool, err := PoolOf(kind)
	if nil != err {
		return nil, err
	}

	packed, err := pool.Get(RecordKey(id))
	if nil != err {
		return nil, err
	}
	if nil == packed {
		return record.New(kind, id)
	}
	return record.Unpack(kind, id, packed)
}

// Allocate - the next unused id of a kind
func (s *RecordStore) Allocate(kind record.Kind) (uint64, error) {
	if !kind.Valid() {
		return 0, fault.ErrInvalidRecordKind
	}

	s.Lock()
	defer s.Unlock()

	trx, err := NewDBTransaction()
	if nil != err {
		return 0, err
	}

	key := []byte{byte(kind)}
	id, _, err := trx.GetN(Pool.NextID, key)
	if nil != err {
		trx.Abort()
		return 0, err
	}
	if record.NoNext == id {
		trx.Abort()
		return 0, fault.ErrInvalidRecordId
	}

	trx.PutN(Pool.NextID, key, id+1)
	err = trx.Commit()
	if nil != err {
		return 0, err
	}
	return id, nil
}

// Apply - write all records in a single batch
func (s *RecordStore) Apply(records []record.Record) error {
	if 0 == len(records) {
		return nil
	}

	s.Lock()
	defer s.Unlock()

	trx, err := NewDBTransaction()
	if nil != err {
		return err
	}

	for _, r := range records {
		pool, err := PoolOf(r.Kind())
		if nil != err {
			trx.Abort()
			return err
		}
		trx.Put(pool, RecordKey(r.ID()), r.Pack())
	}

	return trx.Commit()
}
