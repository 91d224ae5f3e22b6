// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertystore/fault"
	"github.com/bitmark-inc/propertystore/storage"
)

// helper to add to pool
func poolPut(t *testing.T, p *storage.PoolHandle, key string, data string) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	trx.Put(p, []byte(key), []byte(data))
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

// helper to remove from pool
func poolDelete(t *testing.T, p *storage.PoolHandle, key string) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	trx.Delete(p, []byte(key))
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

// main pool test
func TestPool(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	// ensure that pool was empty
	checkAgain(t, true)

	poolPut(t, p, "key-one", "data-one")
	poolPut(t, p, "key-two", "data-two")
	poolPut(t, p, "key-remove-me", "to be deleted")
	poolDelete(t, p, "key-remove-me")
	poolPut(t, p, "key-three", "data-three")
	poolPut(t, p, "key-one", "data-one")     // duplicate
	poolPut(t, p, "key-three", "data-three") // duplicate
	poolPut(t, p, "key-four", "data-four")
	poolPut(t, p, "key-delete-this", "to be deleted")
	poolPut(t, p, "key-five", "data-five")
	poolPut(t, p, "key-six", "data-six")
	poolDelete(t, p, "key-delete-this")
	poolPut(t, p, "key-seven", "data-seven")
	poolPut(t, p, "key-one", "data-one(NEW)") // duplicate

	// ensure that data is correct
	checkResults(t, p)

	// recheck
	checkAgain(t, false)

	// check that restarting database keeps data
	storage.Finalise()
	err := storage.Initialise(databaseFileName(), storage.ReadWrite)
	assert.Nil(t, err, "reopen")
	checkAgain(t, false)

	// a read only open of an existing database is allowed
	storage.Finalise()
	err = storage.Initialise(databaseFileName(), storage.ReadOnly)
	assert.Nil(t, err, "read only reopen")
	checkAgain(t, false)
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseFileName(), storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestTransactionSingleBatch(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "first transaction")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrBatchInUse, err, "second transaction")

	trx.Abort()

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "transaction after abort")
	trx.Abort()
}

func TestLastElement(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	_, found, err := p.LastElement()
	assert.Nil(t, err, "empty last element")
	assert.False(t, found, "empty pool has a last element")

	poolPut(t, p, "key-a", "data-a")
	poolPut(t, p, "key-c", "data-c")
	poolPut(t, p, "key-b", "data-b")

	e, found, err := p.LastElement()
	assert.Nil(t, err, "last element")
	assert.True(t, found, "last element not found")
	assert.Equal(t, []byte("key-c"), e.Key, "last key")
	assert.Equal(t, []byte("data-c"), e.Value, "last value")
}

// every element of a pool
func poolElements(t *testing.T, p *storage.PoolHandle) []storage.Element {
	elements := []storage.Element{}
	err := p.NewCursor().Map(func(key []byte, value []byte) error {
		elements = append(elements, storage.Element{Key: key, Value: value})
		return nil
	})
	if nil != err {
		t.Fatalf("map error: %s", err)
	}
	return elements
}

func TestCursorMap(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	for _, e := range expectedElements {
		poolPut(t, p, string(e.Key), string(e.Value))
	}

	n := 0
	err := p.NewCursor().Map(func(key []byte, value []byte) error {
		assert.Equal(t, expectedElements[n].Key, key, "key: %d", n)
		assert.Equal(t, expectedElements[n].Value, value, "value: %d", n)
		n += 1
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, len(expectedElements), n, "mapped count")

	stop := fault.ErrInvalidCount
	n = 0
	err = p.NewCursor().Map(func(key []byte, value []byte) error {
		n += 1
		return stop
	})
	assert.Equal(t, stop, err, "map stop")
	assert.Equal(t, 1, n, "map stopped early")

	var cursor *storage.Cursor
	err = cursor.Map(func(key []byte, value []byte) error { return nil })
	assert.Equal(t, fault.ErrInvalidCursor, err, "nil cursor")
}

func checkResults(t *testing.T, p *storage.PoolHandle) {

	// ensure we get all of the pool
	assert.Equal(t, expectedElements, poolElements(t, p), "pool contents")

	// check key exists
	found, err := p.Has(testKey)
	assert.Nil(t, err, "has")
	assert.True(t, found, "not found: %q", testKey)

	// retrieve a key
	d2, err := p.Get(testKey)
	assert.Nil(t, err, "get")
	assert.Equal(t, testData, string(d2), "mismatch on Get")

	// check that key does not exist
	found, err = p.Has(nonExistantKey)
	assert.Nil(t, err, "has")
	assert.False(t, found, "unexpectedly found: %q", nonExistantKey)

	// retrieve a key not in the pool
	dn, err := p.Get(nonExistantKey)
	assert.Nil(t, err, "get")
	assert.Nil(t, dn, "unexpected data on Get")
}

func checkAgain(t *testing.T, empty bool) {

	p := storage.Pool.TestData

	data := poolElements(t, p)
	if empty && 0 != len(data) {
		t.Errorf("Pool was not empty, count = %d", len(data))
	}

	for i, e := range expectedElements {

		data, err := p.Get(e.Key)
		assert.Nil(t, err, "checkAgain: %d: get", i)
		if empty {
			assert.Nil(t, data, "checkAgain: %d: unexpected data on Get('%s')", i, e.Key)
		} else {
			assert.Equal(t, e.Value, data, "checkAgain: %d: mismatch on Get('%s')", i, e.Key)
		}
	}
}
