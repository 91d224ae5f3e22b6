// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/propertystore/fault"
	"github.com/bitmark-inc/propertystore/storage/mocks"
)

const (
	dbName     = "data-access"
	defaultKey = "key"
)

var (
	defaultValue = []byte{'a'}
)

func newMockCache(t *testing.T) (*mocks.MockCache, *gomock.Controller) {
	ctl := gomock.NewController(t)
	return mocks.NewMockCache(ctl), ctl
}

func removeDir(dirName string) {
	dirPath, _ := filepath.Abs(dirName)
	_ = os.RemoveAll(dirPath)
}

// open a fresh database, the returned function closes and removes it
func setupTestDataAccess(t *testing.T, mockCache Cache) (Access, func()) {
	removeDir(dbName)
	db, err := leveldb.OpenFile(dbName, nil)
	if nil != err {
		t.Fatalf("open database error: %s", err)
	}
	da := newDA(db, new(leveldb.Batch), mockCache)
	return da, func() {
		_ = db.Close()
		removeDir(dbName)
	}
}

func TestBeginShouldErrorWhenAlreadyInTransaction(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	err := da.Begin()
	assert.Equal(t, nil, err, "first time Begin should with not error")

	err = da.Begin()
	assert.Equal(t, fault.ErrBatchInUse, err, "second time Begin should return error")
}

func TestCommitReleasesBatch(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Clear().Times(1)
	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_ = da.Begin()
	err := da.Commit()
	assert.Nil(t, err, "commit error")
	assert.False(t, da.InUse(), "still in use after commit")

	err = da.Begin()
	assert.Nil(t, err, "begin after commit")
}

func TestCommitWithoutBegin(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	err := da.Commit()
	assert.Equal(t, fault.ErrBatchNotInUse, err, "commit without begin")
}

func TestCommitResetTransaction(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mc.EXPECT().Clear().AnyTimes()
	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	_ = da.Commit()

	actual := da.DumpTx()
	assert.Equal(t, 0, len(actual), "Commit did not reset transaction")
}

func TestCommitWriteToDB(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(gomock.Any()).Return(dbPut, nil, false).AnyTimes()
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mc.EXPECT().Clear().AnyTimes()
	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	_ = da.Commit()

	actual, err := da.Get([]byte(defaultKey))
	assert.Nil(t, err, "get error")
	assert.Equal(t, defaultValue, actual, "commit not write to db")
}

func TestPutActionCached(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Set(dbPut, defaultKey, defaultValue).Times(1)
	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
}

func TestDeleteActionCached(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Set(dbPut, "a", []byte{'b'}).Times(1)
	mc.EXPECT().Set(dbDelete, "a", []byte{}).Times(1)
	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	fixture := struct {
		key   []byte
		value []byte
	}{
		[]byte{'a'},
		[]byte{'b'},
	}

	_ = da.Begin()
	da.Put(fixture.key, fixture.value)
	da.Delete(fixture.key)
}

func TestGetActionReadsFromCache(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(defaultKey).Return(dbPut, defaultValue, true).Times(1)
	mc.EXPECT().Set(dbPut, defaultKey, defaultValue).Times(1)
	mc.EXPECT().Clear().Times(0)
	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	actual, err := da.Get([]byte(defaultKey))

	assert.Nil(t, err, "get error")
	assert.Equal(t, defaultValue, actual, "wrong cached value")
}

func TestGetDeletedKeyFromCache(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(defaultKey).Return(dbDelete, []byte{}, true).Times(1)
	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_, err := da.Get([]byte(defaultKey))
	assert.Equal(t, leveldb.ErrNotFound, err, "deleted key was found")
}

func TestGetActionReadDBIfNotInCache(t *testing.T) {
	key := "random"
	value := []byte{'a', 'b', 'c'}

	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(gomock.Any()).Return(dbPut, nil, false).Times(1)
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	mc.EXPECT().Clear().Times(1)
	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_ = da.Begin()
	da.Put([]byte(key), value)
	_ = da.Commit()
	actual, _ := da.Get([]byte(key))

	assert.Equal(t, value, actual, "db value not set")
}

func TestInUse(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	inUse := da.InUse()
	assert.Equal(t, false, inUse, "inUse default not true")

	_ = da.Begin()
	inUse = da.InUse()
	assert.Equal(t, true, inUse, "inUse not set")
}

func TestAbortResetInUse(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	mc.EXPECT().Clear().Times(1)
	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	da.Abort()

	inUse := da.InUse()
	assert.Equal(t, false, inUse, "inUse is not set")
}

func TestAbortResetBatch(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	mc.EXPECT().Clear().Times(1)
	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	da.Abort()

	dump := da.DumpTx()
	assert.Equal(t, 0, len(dump), "batch not reset")
}

func TestHasCached(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Set(dbPut, defaultKey, defaultValue).Times(1)
	mc.EXPECT().Get(defaultKey).Return(dbPut, defaultValue, true).Times(1)
	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	has, err := da.Has([]byte(defaultKey))
	assert.Equal(t, true, has, "cannot find cached key")
	assert.Equal(t, nil, err, "has with error")
}

func TestHasDeleted(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(defaultKey).Return(dbDelete, []byte{}, true).Times(1)
	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	has, err := da.Has([]byte(defaultKey))
	assert.Equal(t, false, has, "deleted key exists")
	assert.Equal(t, nil, err, "has with error")
}

func TestHasNotCached(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(gomock.Any()).Return(dbPut, nil, false).Times(1)
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	mc.EXPECT().Clear().Times(1)
	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	_ = da.Commit()
	has, _ := da.Has([]byte(defaultKey))
	assert.Equal(t, true, has, "didn't check db")
}
