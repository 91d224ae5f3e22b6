// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertystore/chain"
	"github.com/bitmark-inc/propertystore/property"
	"github.com/bitmark-inc/propertystore/record"
	"github.com/bitmark-inc/propertystore/values"
)

func check(t *testing.T, nodeID uint64) []property.Failure {
	changes := newChanges()
	defer changes.Abort()

	node, err := changes.Nodes().GetOrLoad(nodeID)
	if nil != err {
		t.Fatalf("load node error: %s", err)
	}
	failures, err := property.Check(node, changes)
	if nil != err {
		t.Fatalf("check error: %s", err)
	}
	assert.Equal(t, 0, changes.Changed(), "check changed records")
	return failures
}

func TestCheckHealthy(t *testing.T) {
	nodeID := createNode(t, values.Int(1), values.String(strings.Repeat("h", 260)), values.IntArray{1, 2})
	assert.Equal(t, 0, len(check(t, nodeID)), "failures")

	assert.Equal(t, 0, len(check(t, createNode(t))), "failures of empty node")
}

func TestCheckPropertyCycle(t *testing.T) {
	nodeID := createNode(t, ints(0, 10)...)
	chain0 := propertyChain(t, nodeID)
	setNextProperty(t, chain0[2], chain0[1])

	failures := check(t, nodeID)
	if assert.Equal(t, 1, len(failures), "failures") {
		f := failures[0]
		assert.Equal(t, record.PropertyKind, f.Chain, "chain")
		assert.Equal(t, chain.Cycle, f.Kind, "kind")
		assert.Equal(t, chain0[1], f.Offending, "offending")
		assert.Contains(t, f.String(), "cycle in property chain", "string")
	}

	// nothing was freed
	for _, id := range chain0 {
		assert.True(t, inUse(t, record.PropertyKind, id), "record: %d", id)
	}
}

func TestCheckValueChains(t *testing.T) {
	nodeID := createNode(t,
		values.String(strings.Repeat("1", 250)),
		values.Int(0),
		values.String(strings.Repeat("2", 250)),
	)
	first := valueChain(t, nodeID, 0)
	second := valueChain(t, nodeID, 2)
	freeDynamic(t, record.StringKind, first[2])
	setNextBlock(t, record.StringKind, second[1], second[1])

	failures := check(t, nodeID)
	if assert.Equal(t, 2, len(failures), "failures") {
		assert.Equal(t, record.StringKind, failures[0].Chain, "chain")
		assert.Equal(t, chain.Dangling, failures[0].Kind, "kind")
		assert.Equal(t, first[2], failures[0].Offending, "offending")
		assert.Equal(t, uint32(0), failures[0].Key, "key")

		assert.Equal(t, chain.Cycle, failures[1].Kind, "kind")
		assert.Equal(t, second[1], failures[1].Offending, "offending")
		assert.Equal(t, uint32(2), failures[1].Key, "key")
		assert.Contains(t, failures[1].String(), "cycle in string value chain of key 2", "string")
	}
}
