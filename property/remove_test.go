// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertystore/fault"
	"github.com/bitmark-inc/propertystore/property"
	"github.com/bitmark-inc/propertystore/record"
	"github.com/bitmark-inc/propertystore/values"
)

// remove keys from a node in one set of changes
func removeKeys(t *testing.T, deleter *property.Deleter, nodeID uint64, keys ...uint32) {
	changes := newChanges()
	defer changes.Abort()

	node, err := changes.Nodes().Change(nodeID)
	if nil != err {
		t.Fatalf("change node error: %s", err)
	}
	for _, key := range keys {
		if err := deleter.RemoveProperty(node, key, changes); nil != err {
			t.Fatalf("remove key: %d error: %s", key, err)
		}
	}
	closeChanges(t, changes)
}

func nodeKeys(t *testing.T, nodeID uint64) []uint32 {
	changes := newChanges()
	defer changes.Abort()

	node, err := changes.Nodes().GetOrLoad(nodeID)
	if nil != err {
		t.Fatalf("load node error: %s", err)
	}
	properties, err := property.NewTraverser().Properties(node, changes)
	if nil != err {
		t.Fatalf("properties error: %s", err)
	}
	keys := []uint32{}
	for _, p := range properties {
		keys = append(keys, p.Key)
	}
	return keys
}

func TestRemoveProperty(t *testing.T) {
	deleter, messages, ctl := newDeleter(t, true)
	defer ctl.Finish()

	nodeID := createNode(t, ints(0, 6)...)
	chain := propertyChain(t, nodeID)
	assert.Equal(t, 2, len(chain), "chain length")

	removeKeys(t, deleter, nodeID, 1)
	assert.Equal(t, []uint32{0, 2, 3, 4, 5}, nodeKeys(t, nodeID), "keys")
	assert.True(t, inUse(t, record.PropertyKind, chain[0]), "record with keys left was freed")

	// emptying the last record unlinks it
	removeKeys(t, deleter, nodeID, 4, 5)
	assert.Equal(t, []uint32{0, 2, 3}, nodeKeys(t, nodeID), "keys")
	assert.False(t, inUse(t, record.PropertyKind, chain[1]), "empty record still in use")
	assert.Equal(t, []uint64{chain[0]}, propertyChain(t, nodeID), "chain")

	removeKeys(t, deleter, nodeID, 0, 2, 3)
	assert.Equal(t, []uint32{}, nodeKeys(t, nodeID), "keys")
	assert.Equal(t, record.NoNext, loadNode(t, nodeID).NextProperty(), "head")
	assert.False(t, inUse(t, record.PropertyKind, chain[0]), "empty record still in use")

	assert.Equal(t, 0, len(*messages), "unexpected warning")
}

func TestRemoveHeadRecord(t *testing.T) {
	deleter, _, ctl := newDeleter(t, true)
	defer ctl.Finish()

	nodeID := createNode(t, ints(0, 12)...)
	chain := propertyChain(t, nodeID)
	assert.Equal(t, 3, len(chain), "chain length")

	// first record, then middle record
	removeKeys(t, deleter, nodeID, 0, 1, 2, 3)
	assert.Equal(t, chain[1:], propertyChain(t, nodeID), "chain without head")

	removeKeys(t, deleter, nodeID, 8, 9, 10, 11)
	assert.Equal(t, []uint64{chain[1]}, propertyChain(t, nodeID), "chain without tail")

	changes := newChanges()
	defer changes.Abort()
	p, err := changes.Properties().GetOrLoad(chain[1])
	assert.Nil(t, err, "load remaining record")
	assert.Equal(t, record.NoNext, p.PrevProp, "prev")
	assert.Equal(t, record.NoNext, p.NextProp, "next")
}

func TestRemoveMiddleRecord(t *testing.T) {
	deleter, _, ctl := newDeleter(t, true)
	defer ctl.Finish()

	nodeID := createNode(t, ints(0, 12)...)
	chain := propertyChain(t, nodeID)

	removeKeys(t, deleter, nodeID, 4, 5, 6, 7)
	assert.Equal(t, []uint64{chain[0], chain[2]}, propertyChain(t, nodeID), "chain")

	changes := newChanges()
	defer changes.Abort()
	p, err := changes.Properties().GetOrLoad(chain[2])
	assert.Nil(t, err, "load last record")
	assert.Equal(t, chain[0], p.PrevProp, "prev")
}

func TestRemoveDynamicProperty(t *testing.T) {
	deleter, _, ctl := newDeleter(t, true)
	defer ctl.Finish()

	nodeID := createNode(t, values.Int(1), values.String(strings.Repeat("z", 200)))
	strs := valueChain(t, nodeID, 1)
	assert.Equal(t, 2, len(strs), "value chain length")

	removeKeys(t, deleter, nodeID, 1)
	assert.Equal(t, []uint32{0}, nodeKeys(t, nodeID), "keys")
	for _, id := range strs {
		assert.False(t, inUse(t, record.StringKind, id), "string record: %d still in use", id)
	}
	assert.Equal(t, uint64(2), deleter.Statistics().DynamicRecords, "dynamic records")
}

func TestRemoveDamagedValueChain(t *testing.T) {
	deleter, messages, ctl := newDeleter(t, true)
	defer ctl.Finish()

	nodeID := createNode(t, values.String(strings.Repeat("q", 300)))
	strs := valueChain(t, nodeID, 0)
	setNextBlock(t, record.StringKind, strs[1], strs[0])

	removeKeys(t, deleter, nodeID, 0)
	assert.Equal(t, record.NoNext, loadNode(t, nodeID).NextProperty(), "head")

	if assert.Equal(t, 1, len(*messages), "messages") {
		assert.Contains(t, (*messages)[0], "Removed property with inconsistent value chain with cycle", "message")
	}
}

func TestRemoveMissingProperty(t *testing.T) {
	deleter, _, ctl := newDeleter(t, true)
	defer ctl.Finish()

	nodeID := createNode(t, ints(0, 2)...)

	changes := newChanges()
	defer changes.Abort()

	node, err := changes.Nodes().Change(nodeID)
	assert.Nil(t, err, "change node")

	err = deleter.RemoveProperty(node, 99, changes)
	assert.Equal(t, fault.ErrPropertyNotFound, err, "missing key")

	removed, err := deleter.RemovePropertyIfExists(node, 99, changes)
	assert.Nil(t, err, "missing key if exists")
	assert.False(t, removed, "removed missing key")

	removed, err = deleter.RemovePropertyIfExists(node, 1, changes)
	assert.Nil(t, err, "existing key")
	assert.True(t, removed, "existing key not removed")
}

func TestRemoveFromDamagedChain(t *testing.T) {
	deleter, _, ctl := newDeleter(t, true)
	defer ctl.Finish()

	nodeID := createNode(t, ints(0, 8)...)
	chain := propertyChain(t, nodeID)
	setNextProperty(t, chain[1], chain[0])

	changes := newChanges()
	defer changes.Abort()

	node, err := changes.Nodes().Change(nodeID)
	assert.Nil(t, err, "change node")

	err = deleter.RemoveProperty(node, 99, changes)
	assert.Equal(t, fault.ErrInconsistentChain, err, "damaged chain")
}
