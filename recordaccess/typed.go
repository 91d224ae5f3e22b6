// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package recordaccess

import (
	"github.com/bitmark-inc/propertystore/record"
)

// OwnerRecords - node or relationship records of a Set
type OwnerRecords struct {
	view *view
}

// Kind - node or relationship
func (o *OwnerRecords) Kind() record.Kind { return o.view.kind }

// GetOrLoad - current state of a record without marking it changed
func (o *OwnerRecords) GetOrLoad(id uint64) (record.Owner, error) {
	r, err := o.view.getOrLoad(id)
	if nil != err {
		return nil, err
	}
	return r.(record.Owner), nil
}

// Change - the record, marked to be written on Close
func (o *OwnerRecords) Change(id uint64) (record.Owner, error) {
	r, err := o.view.change(id)
	if nil != err {
		return nil, err
	}
	return r.(record.Owner), nil
}

// Create - a fresh in use record, marked to be written on Close
func (o *OwnerRecords) Create(id uint64) (record.Owner, error) {
	r, err := o.view.create(id)
	if nil != err {
		return nil, err
	}
	return r.(record.Owner), nil
}

// Stage - replace the record with r and mark it changed
func (o *OwnerRecords) Stage(r record.Owner) error { return o.view.stage(r) }

// NextID - allocate an id from the store
func (o *OwnerRecords) NextID() (uint64, error) { return o.view.nextID() }

// IsChanged - true if Close would write the record
func (o *OwnerRecords) IsChanged(id uint64) bool { return o.view.isChanged(id) }

// PropertyRecords - property records of a Set
type PropertyRecords struct {
	view *view
}

// GetOrLoad - current state of a record without marking it changed
func (p *PropertyRecords) GetOrLoad(id uint64) (*record.PropertyRecord, error) {
	r, err := p.view.getOrLoad(id)
	if nil != err {
		return nil, err
	}
	return r.(*record.PropertyRecord), nil
}

// Change - the record, marked to be written on Close
func (p *PropertyRecords) Change(id uint64) (*record.PropertyRecord, error) {
	r, err := p.view.change(id)
	if nil != err {
		return nil, err
	}
	return r.(*record.PropertyRecord), nil
}

// Create - a fresh in use record, marked to be written on Close
func (p *PropertyRecords) Create(id uint64) (*record.PropertyRecord, error) {
	r, err := p.view.create(id)
	if nil != err {
		return nil, err
	}
	return r.(*record.PropertyRecord), nil
}

// Stage - replace the record with r and mark it changed
func (p *PropertyRecords) Stage(r *record.PropertyRecord) error { return p.view.stage(r) }

// NextID - allocate an id from the store
func (p *PropertyRecords) NextID() (uint64, error) { return p.view.nextID() }

// IsChanged - true if Close would write the record
func (p *PropertyRecords) IsChanged(id uint64) bool { return p.view.isChanged(id) }

// Link - loader for walking property chains
func (p *PropertyRecords) Link(id uint64) (record.Link, error) {
	r, err := p.GetOrLoad(id)
	if nil != err {
		return nil, err
	}
	return r, nil
}

// DynamicRecords - string or array value records of a Set
type DynamicRecords struct {
	view *view
}

// Kind - string or array
func (d *DynamicRecords) Kind() record.Kind { return d.view.kind }

// GetOrLoad - current state of a record without marking it changed
func (d *DynamicRecords) GetOrLoad(id uint64) (*record.DynamicRecord, error) {
	r, err := d.view.getOrLoad(id)
	if nil != err {
		return nil, err
	}
	return r.(*record.DynamicRecord), nil
}

// Change - the record, marked to be written on Close
func (d *DynamicRecords) Change(id uint64) (*record.DynamicRecord, error) {
	r, err := d.view.change(id)
	if nil != err {
		return nil, err
	}
	return r.(*record.DynamicRecord), nil
}

// Create - a fresh in use record, marked to be written on Close
func (d *DynamicRecords) Create(id uint64) (*record.DynamicRecord, error) {
	r, err := d.view.create(id)
	if nil != err {
		return nil, err
	}
	return r.(*record.DynamicRecord), nil
}

// Stage - replace the record with r and mark it changed
func (d *DynamicRecords) Stage(r *record.DynamicRecord) error { return d.view.stage(r) }

// NextID - allocate an id from the store
func (d *DynamicRecords) NextID() (uint64, error) { return d.view.nextID() }

// IsChanged - true if Close would write the record
func (d *DynamicRecords) IsChanged(id uint64) bool { return d.view.isChanged(id) }

// Link - loader for walking value chains
func (d *DynamicRecords) Link(id uint64) (record.Link, error) {
	r, err := d.GetOrLoad(id)
	if nil != err {
		return nil, err
	}
	return r, nil
}
