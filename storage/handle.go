// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/propertystore/fault"
)

// PoolHandle - one prefixed table of the database
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess Access
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Prefix - the key prefix of the pool
func (p *PoolHandle) Prefix() byte {
	return p.prefix
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// store a key/value bytes pair into the open batch
func (p *PoolHandle) put(key []byte, value []byte) {
	p.dataAccess.Put(p.prefixKey(key), value)
}

// store a big endian uint64 into the open batch
func (p *PoolHandle) putN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.put(key, buffer)
}

// remove a key through the open batch
func (p *PoolHandle) remove(key []byte) {
	p.dataAccess.Delete(p.prefixKey(key))
}

// Get - read a value for a given key
//
// a missing key returns nil without error, this returns the actual
// element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		return nil, fault.ErrNotInitialised
	}
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool, error) {
	buffer, err := p.Get(key)
	if nil != err {
		return 0, false, err
	}
	if nil == buffer {
		return 0, false, nil
	}
	if len(buffer) < 8 {
		return 0, false, fault.ErrRecordSize
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true, nil
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		return false, fault.ErrNotInitialised
	}
	return p.dataAccess.Has(p.prefixKey(key))
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool, error) {
	maxRange := ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		return Element{}, false, fault.ErrNotInitialised
	}

	iter := p.dataAccess.Iterator(&maxRange)

	found := false
	result := Element{}
	if iter.Last() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		result.Key = dataKey
		result.Value = dataValue
		found = true
	}
	iter.Release()
	return result, found, iter.Error()
}
