// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bitmark-inc/propertystore/chain"
	"github.com/bitmark-inc/propertystore/record"
)

// Failure - one damaged chain found under an owner
//
// Chain is the kind of the damaged chain: PropertyKind for the
// property chain itself, StringKind or ArrayKind for the value chain
// of the block Key in PropertyRecord
type Failure struct {
	Chain          record.Kind
	Kind           chain.Kind
	Offending      uint64
	PropertyRecord uint64
	Key            uint32
}

func (f Failure) String() string {
	if record.PropertyKind == f.Chain {
		return fmt.Sprintf("%s in property chain at property record %d", f.Kind, f.Offending)
	}
	return fmt.Sprintf("%s in %s value chain of key %d (property record %d) at %s record %d",
		f.Kind, f.Chain, f.Key, f.PropertyRecord, f.Chain, f.Offending)
}

func propertyFailure(inconsistency *chain.Inconsistency) Failure {
	return Failure{
		Chain:          record.PropertyKind,
		Kind:           inconsistency.Kind,
		Offending:      inconsistency.Offending,
		PropertyRecord: inconsistency.Offending,
	}
}

func valueFailure(inconsistency *chain.Inconsistency, p *record.PropertyRecord, block *record.PropertyBlock) Failure {
	return Failure{
		Chain:          block.DynamicKind(),
		Kind:           inconsistency.Kind,
		Offending:      inconsistency.Offending,
		PropertyRecord: p.ID(),
		Key:            block.Key,
	}
}

// a block as it was before deletion, with its value chain if that
// could be walked
type salvaged struct {
	block        record.PropertyBlock
	valueRecords []*record.DynamicRecord
	unavailable  error
}

// everything found while deleting the chain of one owner
type diagnostic struct {
	owner    record.Owner
	incident uuid.UUID
	failures []Failure
	blocks   []salvaged
}

func newDiagnostic(owner record.Owner) *diagnostic {
	return &diagnostic{
		owner:    owner,
		incident: uuid.New(),
	}
}

func (d *diagnostic) fail(f Failure) {
	d.failures = append(d.failures, f)
}

func (d *diagnostic) salvage(block record.PropertyBlock, valueRecords []*record.DynamicRecord, unavailable error) {
	block.ValueRecords = nil
	d.blocks = append(d.blocks, salvaged{
		block:        block,
		valueRecords: valueRecords,
		unavailable:  unavailable,
	})
}

func (d *diagnostic) inconsistent() bool {
	return len(d.failures) > 0
}

// the single warning for the owner
func (d *diagnostic) message(prefix string, decoder *Decoder) string {
	kind := ""
	if d.inconsistent() {
		kind = " with " + d.failures[0].Kind.String()
	}

	failures := make([]string, len(d.failures))
	for i, f := range d.failures {
		failures[i] = f.String()
	}

	found := make([]string, len(d.blocks))
	for i, s := range d.blocks {
		found[i] = fmt.Sprintf("key %d = %s", s.block.Key, d.value(s, decoder))
	}

	return fmt.Sprintf("%s%s for %s %d [incident: %s]: failures: [%s]; values: [%s]",
		prefix, kind, d.owner.Kind(), d.owner.ID(), d.incident,
		strings.Join(failures, "; "), strings.Join(found, ", "))
}

func (d *diagnostic) value(s salvaged, decoder *Decoder) string {
	if nil != s.unavailable {
		return fmt.Sprintf("<unavailable: %s>", s.unavailable)
	}
	v, err := decoder.Decode(&s.block, s.valueRecords)
	if nil != err {
		return fmt.Sprintf("<unavailable: %s>", err)
	}
	return v.String()
}
