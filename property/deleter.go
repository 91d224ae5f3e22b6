// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

import (
	"github.com/bitmark-inc/propertystore/chain"
	"github.com/bitmark-inc/propertystore/fault"
	"github.com/bitmark-inc/propertystore/record"
	"github.com/bitmark-inc/propertystore/recordaccess"
)

// warning prefixes
const (
	deletedChainMessage = "Deleted inconsistent property chain"
	removedValueMessage = "Removed property with inconsistent value chain"
)

// Deleter - free property chains and single properties
type Deleter struct {
	configuration Configuration
	log           Log
	traverser     *Traverser
	decoder       *Decoder
	statistics    statistics
}

// NewDeleter - create a deleter reporting to log
func NewDeleter(configuration Configuration, log Log) *Deleter {
	return &Deleter{
		configuration: configuration,
		log:           log,
		traverser:     NewTraverser(),
		decoder:       &Decoder{},
	}
}

// Statistics - counters of the work done so far
func (d *Deleter) Statistics() Statistics {
	return d.statistics.snapshot()
}

// DeletePropertyChain - free every record of the owner's property
// chain and of the value chains it references, then detach the chain
// from the owner
//
// the walk stops at a cycle or at a record that is not in use; what
// was reached is freed and, if enabled, one warning lists what was
// found together with the values that could still be read.  Only a
// store failure is returned, in which case changes must be aborted.
func (d *Deleter) DeletePropertyChain(owner record.Owner, changes *recordaccess.Set) error {
	start := owner.NextProperty()
	if record.NoNext == start {
		return nil
	}

	properties := changes.Properties()
	diagnostic := newDiagnostic(owner)

	links, inconsistency, err := d.traverser.PropertyChain(start, changes).Collect()
	if nil != err {
		return err
	}

	// records are processed only after the walk so that no check
	// sees a record freed by this deletion
	targets := links
	if nil != inconsistency {
		diagnostic.fail(propertyFailure(inconsistency))
		if chain.Dangling == inconsistency.Kind {
			targets = append(targets, inconsistency.Record)
		}
	}

	for _, link := range targets {
		p, err := properties.Change(link.ID())
		if nil != err {
			return err
		}
		for i := range p.Blocks {
			err := d.deleteBlock(p, &p.Blocks[i], changes, diagnostic)
			if nil != err {
				return err
			}
		}
		p.ClearBlocks()
		p.SetInUse(false)
		d.statistics.propertyRecords.Increment()
	}
	d.statistics.chains.Increment()

	d.report(deletedChainMessage, diagnostic)

	owner.SetNextProperty(record.NoNext)
	return stageOwner(owner, changes)
}

// RemoveProperty - remove one key from an owner
//
// ErrPropertyNotFound if the owner does not have the key
func (d *Deleter) RemoveProperty(owner record.Owner, key uint32, changes *recordaccess.Set) error {
	removed, err := d.RemovePropertyIfExists(owner, key, changes)
	if nil != err {
		return err
	}
	if !removed {
		return fault.ErrPropertyNotFound
	}
	return nil
}

// RemovePropertyIfExists - remove one key from an owner if present
//
// the value chain of the key is freed; a property record left empty
// is unlinked from the chain and freed
func (d *Deleter) RemovePropertyIfExists(owner record.Owner, key uint32, changes *recordaccess.Set) (bool, error) {
	found, err := d.traverser.FindPropertyRecordContaining(owner, key, changes)
	if fault.ErrPropertyNotFound == err {
		return false, nil
	}
	if nil != err {
		return false, err
	}

	properties := changes.Properties()
	p, err := properties.Change(found.ID())
	if nil != err {
		return false, err
	}

	block, _ := p.RemoveBlock(key)
	if block.IsDynamic() {
		diagnostic := newDiagnostic(owner)
		err := d.deleteBlock(p, &block, changes, diagnostic)
		if nil != err {
			return false, err
		}
		d.report(removedValueMessage, diagnostic)
	}

	if 0 != len(p.Blocks) {
		return true, nil
	}

	prev := p.PrevProp
	next := p.NextProp
	if record.NoNext == prev {
		owner.SetNextProperty(next)
		if err := stageOwner(owner, changes); nil != err {
			return false, err
		}
	} else {
		pp, err := properties.Change(prev)
		if nil != err {
			return false, err
		}
		pp.NextProp = next
	}
	if record.NoNext != next {
		np, err := properties.Change(next)
		if nil != err {
			return false, err
		}
		np.PrevProp = prev
	}

	p.PrevProp = record.NoNext
	p.NextProp = record.NoNext
	p.SetInUse(false)
	d.statistics.propertyRecords.Increment()

	return true, nil
}

// record the block in the diagnostic and free its value chain
func (d *Deleter) deleteBlock(p *record.PropertyRecord, block *record.PropertyBlock, changes *recordaccess.Set, diagnostic *diagnostic) error {
	if !block.IsDynamic() {
		diagnostic.salvage(*block, nil, nil)
		return nil
	}

	freed, inconsistency, err := freeValueChain(block, changes)
	if nil != err {
		return err
	}
	d.statistics.dynamicRecords.Add(uint64(len(freed)))

	if nil != inconsistency {
		diagnostic.fail(valueFailure(inconsistency, p, block))
		diagnostic.salvage(*block, nil, fault.ErrInconsistentChain)
		return nil
	}
	diagnostic.salvage(*block, freed, nil)
	return nil
}

// emit the warning for an owner if anything was wrong
func (d *Deleter) report(prefix string, diagnostic *diagnostic) {
	if !diagnostic.inconsistent() {
		return
	}
	d.statistics.inconsistencies.Add(uint64(len(diagnostic.failures)))
	d.statistics.incident(diagnostic.incident.String())
	if d.configuration.LogInconsistentDataOnDeletion {
		d.log.Warn(diagnostic.message(prefix, d.decoder))
	}
}

// free the value chain of a dynamic block
//
// every record reached is freed, including an unused record that
// ended the walk; the freed records are returned in chain order with
// their data intact
func freeValueChain(block *record.PropertyBlock, changes *recordaccess.Set) ([]*record.DynamicRecord, *chain.Inconsistency, error) {
	dynamic, err := changes.Dynamic(block.DynamicKind())
	if nil != err {
		return nil, nil, err
	}

	links, inconsistency, err := chain.New(block.ValueStart(), dynamic.Link).Collect()
	if nil != err {
		return nil, nil, err
	}

	targets := links
	if nil != inconsistency && chain.Dangling == inconsistency.Kind {
		targets = append(targets, inconsistency.Record)
	}

	freed := make([]*record.DynamicRecord, 0, len(targets))
	for _, link := range targets {
		r, err := dynamic.Change(link.ID())
		if nil != err {
			return nil, nil, err
		}
		r.SetInUse(false)
		freed = append(freed, r)
	}
	return freed, inconsistency, nil
}
