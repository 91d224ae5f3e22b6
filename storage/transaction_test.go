// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertystore/fault"
)

func setupTestTransaction(t *testing.T) (Transaction, *PoolHandle, func()) {
	da, teardown := setupTestDataAccess(t, newCache())
	pool := &PoolHandle{
		prefix:     'T',
		limit:      []byte{'U'},
		dataAccess: da,
	}
	return newTransaction(da), pool, teardown
}

func TestTransactionBegin(t *testing.T) {
	trx, _, teardown := setupTestTransaction(t)
	defer teardown()

	err := trx.Begin()
	assert.Equal(t, nil, err, "first time Begin should not return any error")
	assert.True(t, trx.InUse(), "not in use")

	err = trx.Begin()
	assert.Equal(t, fault.ErrBatchInUse, err, "second time Begin should return error")
}

func TestTransactionReadsOwnWrites(t *testing.T) {
	trx, pool, teardown := setupTestTransaction(t)
	defer teardown()

	_ = trx.Begin()
	trx.Put(pool, []byte("k1"), []byte("v1"))
	trx.PutN(pool, []byte("n1"), 42)

	value, err := trx.Get(pool, []byte("k1"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("v1"), value, "pending value")

	n, found, err := trx.GetN(pool, []byte("n1"))
	assert.Nil(t, err, "get n error")
	assert.True(t, found, "pending count not found")
	assert.Equal(t, uint64(42), n, "pending count")

	trx.Delete(pool, []byte("k1"))
	value, err = trx.Get(pool, []byte("k1"))
	assert.Nil(t, err, "get deleted error")
	assert.Nil(t, value, "deleted value visible")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")
	assert.False(t, trx.InUse(), "in use after commit")

	n, found, err = pool.GetN([]byte("n1"))
	assert.Nil(t, err, "committed get n error")
	assert.True(t, found, "committed count not found")
	assert.Equal(t, uint64(42), n, "committed count")

	found, err = pool.Has([]byte("k1"))
	assert.Nil(t, err, "has error")
	assert.False(t, found, "deleted key was committed")
}

func TestTransactionAbort(t *testing.T) {
	trx, pool, teardown := setupTestTransaction(t)
	defer teardown()

	_ = trx.Begin()
	trx.Put(pool, []byte("k1"), []byte("v1"))
	trx.Abort()

	assert.False(t, trx.InUse(), "in use after abort")

	value, err := pool.Get([]byte("k1"))
	assert.Nil(t, err, "get error")
	assert.Nil(t, value, "aborted value was written")
}

func TestGetNTruncated(t *testing.T) {
	trx, pool, teardown := setupTestTransaction(t)
	defer teardown()

	_ = trx.Begin()
	trx.Put(pool, []byte("short"), []byte{1, 2, 3})
	_ = trx.Commit()

	_, _, err := pool.GetN([]byte("short"))
	assert.Equal(t, fault.ErrRecordSize, err, "truncated count")
}
