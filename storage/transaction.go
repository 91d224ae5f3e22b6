// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - a write batch spanning all pools
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) ([]byte, error)
	GetN(*PoolHandle, []byte) (uint64, bool, error)
	Commit() error
	Abort()
	InUse() bool
}

// TransactionImpl - Transaction over the shared batch access
type TransactionImpl struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionImpl{
		access: access,
	}
}

func (t *TransactionImpl) Begin() error {
	return t.access.Begin()
}

func (t *TransactionImpl) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

func (t *TransactionImpl) PutN(handle *PoolHandle, key []byte, value uint64) {
	handle.putN(key, value)
}

func (t *TransactionImpl) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

// Get - reads see the writes already made in this transaction
func (t *TransactionImpl) Get(handle *PoolHandle, key []byte) ([]byte, error) {
	return handle.Get(key)
}

func (t *TransactionImpl) GetN(handle *PoolHandle, key []byte) (uint64, bool, error) {
	return handle.GetN(key)
}

func (t *TransactionImpl) Commit() error {
	return t.access.Commit()
}

func (t *TransactionImpl) Abort() {
	t.access.Abort()
}

func (t *TransactionImpl) InUse() bool {
	return t.access.InUse()
}
