// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertystore/fault"
	"github.com/bitmark-inc/propertystore/record"
	"github.com/bitmark-inc/propertystore/storage"
)

func TestReadNeverWritten(t *testing.T) {
	setup(t)
	defer teardown(t)

	store := storage.NewRecordStore()

	for _, kind := range record.Kinds {
		r, err := store.Read(kind, 5)
		assert.Nil(t, err, "read: %s", kind)
		assert.Equal(t, kind, r.Kind(), "kind")
		assert.Equal(t, uint64(5), r.ID(), "id")
		assert.False(t, r.InUse(), "never written record in use")
	}

	_, err := store.Read(record.NodeKind, record.NoNext)
	assert.Equal(t, fault.ErrInvalidRecordId, err, "sentinel id")

	_, err = store.Read(record.Kind('Q'), 1)
	assert.Equal(t, fault.ErrInvalidRecordKind, err, "invalid kind")
}

func TestAllocate(t *testing.T) {
	setup(t)
	defer teardown(t)

	store := storage.NewRecordStore()

	for i := uint64(0); i < 3; i += 1 {
		id, err := store.Allocate(record.PropertyKind)
		assert.Nil(t, err, "allocate")
		assert.Equal(t, i, id, "property id")
	}

	id, err := store.Allocate(record.NodeKind)
	assert.Nil(t, err, "allocate node")
	assert.Equal(t, uint64(0), id, "ids are per kind")

	// counters survive a restart
	storage.Finalise()
	err = storage.Initialise(databaseFileName(), storage.ReadWrite)
	assert.Nil(t, err, "reopen")

	id, err = store.Allocate(record.PropertyKind)
	assert.Nil(t, err, "allocate after reopen")
	assert.Equal(t, uint64(3), id, "property id after reopen")

	_, err = store.Allocate(record.Kind(0))
	assert.Equal(t, fault.ErrInvalidRecordKind, err, "invalid kind")
}

func TestApply(t *testing.T) {
	setup(t)
	defer teardown(t)

	store := storage.NewRecordStore()

	node := record.NewNode(1)
	node.SetInUse(true)
	node.SetNextProperty(7)

	prop := record.NewProperty(7)
	prop.SetInUse(true)
	_ = prop.AddBlock(record.PropertyBlock{Key: 3, Type: record.BoolType, Size: 1, Payload: [8]byte{1}})

	str := record.NewDynamic(record.StringKind, 2)
	str.SetInUse(true)
	str.Data = []byte("hello")

	err := store.Apply([]record.Record{node, prop, str})
	assert.Nil(t, err, "apply")

	r, err := store.Read(record.NodeKind, 1)
	assert.Nil(t, err, "read node")
	assert.Equal(t, node, r, "node")

	r, err = store.Read(record.PropertyKind, 7)
	assert.Nil(t, err, "read property")
	assert.Equal(t, prop, r, "property")

	r, err = store.Read(record.StringKind, 2)
	assert.Nil(t, err, "read string")
	assert.Equal(t, str, r, "string")

	// freeing keeps the record, only the flag changes
	prop.SetInUse(false)
	err = store.Apply([]record.Record{prop})
	assert.Nil(t, err, "apply free")

	r, err = store.Read(record.PropertyKind, 7)
	assert.Nil(t, err, "read freed property")
	assert.False(t, r.InUse(), "freed property in use")

	assert.Nil(t, store.Apply(nil), "empty apply")
}

func TestApplyWhileBatchInUse(t *testing.T) {
	setup(t)
	defer teardown(t)

	store := storage.NewRecordStore()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction")

	err = store.Apply([]record.Record{record.NewNode(1)})
	assert.Equal(t, fault.ErrBatchInUse, err, "apply with open batch")

	trx.Abort()
}

func TestRecordKey(t *testing.T) {
	key := storage.RecordKey(0x0102)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 2}, key, "key")

	id, err := storage.RecordID(key)
	assert.Nil(t, err, "id")
	assert.Equal(t, uint64(0x0102), id, "id")

	_, err = storage.RecordID([]byte{1})
	assert.Equal(t, fault.ErrInvalidKey, err, "short key")

	p, err := storage.PoolOf(record.Kind('Q'))
	assert.Nil(t, p, "pool of invalid kind")
	assert.Equal(t, fault.ErrInvalidRecordKind, err, "invalid kind")
}

func TestScan(t *testing.T) {
	setup(t)
	defer teardown(t)

	store := storage.NewRecordStore()

	first := record.NewNode(3)
	first.SetInUse(true)
	second := record.NewNode(300)
	second.SetNextProperty(9)
	str := record.NewDynamic(record.StringKind, 4)

	err := store.Apply([]record.Record{second, first, str})
	assert.Nil(t, err, "apply")

	nodes := []record.Record{}
	err = store.Scan(record.NodeKind, func(r record.Record) error {
		nodes = append(nodes, r)
		return nil
	})
	assert.Nil(t, err, "scan")
	assert.Equal(t, []record.Record{first, second}, nodes, "nodes in id order")

	n := 0
	err = store.Scan(record.RelationshipKind, func(r record.Record) error {
		n += 1
		return nil
	})
	assert.Nil(t, err, "scan relationships")
	assert.Equal(t, 0, n, "relationships")

	err = store.Scan(record.Kind('Q'), func(r record.Record) error { return nil })
	assert.Equal(t, fault.ErrInvalidRecordKind, err, "invalid kind")

	// a value of the wrong size stops the scan
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction")
	trx.Put(storage.Pool.Nodes, storage.RecordKey(5), []byte{1, 2})
	assert.Nil(t, trx.Commit(), "commit")

	n = 0
	err = store.Scan(record.NodeKind, func(r record.Record) error {
		n += 1
		return nil
	})
	assert.Equal(t, fault.ErrRecordSize, err, "short record")
	assert.Equal(t, 1, n, "records before the short one")
}
