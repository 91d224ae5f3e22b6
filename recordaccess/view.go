// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package recordaccess

import (
	"github.com/bitmark-inc/propertystore/fault"
	"github.com/bitmark-inc/propertystore/record"
)

// records of one kind: everything loaded and the subset changed
type view struct {
	kind    record.Kind
	store   Store
	records map[uint64]record.Record
	changed map[uint64]struct{}
	order   []uint64
	closed  bool
}

// current state of a record, loading it on first access
func (v *view) getOrLoad(id uint64) (record.Record, error) {
	if v.closed {
		return nil, fault.ErrAccessSetClosed
	}
	if record.NoNext == id {
		return nil, fault.ErrInvalidRecordId
	}
	if r, ok := v.records[id]; ok {
		return r, nil
	}
	r, err := v.store.Read(v.kind, id)
	if nil != err {
		return nil, err
	}
	v.records[id] = r
	return r, nil
}

func (v *view) change(id uint64) (record.Record, error) {
	r, err := v.getOrLoad(id)
	if nil != err {
		return nil, err
	}
	v.mark(id)
	return r, nil
}

func (v *view) create(id uint64) (record.Record, error) {
	if v.closed {
		return nil, fault.ErrAccessSetClosed
	}
	if record.NoNext == id {
		return nil, fault.ErrInvalidRecordId
	}
	r, err := record.New(v.kind, id)
	if nil != err {
		return nil, err
	}
	r.SetInUse(true)
	v.records[id] = r
	v.mark(id)
	return r, nil
}

func (v *view) stage(r record.Record) error {
	if v.closed {
		return fault.ErrAccessSetClosed
	}
	if r.Kind() != v.kind {
		return fault.ErrInvalidRecordKind
	}
	if record.NoNext == r.ID() {
		return fault.ErrInvalidRecordId
	}
	v.records[r.ID()] = r
	v.mark(r.ID())
	return nil
}

func (v *view) nextID() (uint64, error) {
	if v.closed {
		return 0, fault.ErrAccessSetClosed
	}
	return v.store.Allocate(v.kind)
}

func (v *view) isChanged(id uint64) bool {
	_, ok := v.changed[id]
	return ok
}

func (v *view) mark(id uint64) {
	if _, ok := v.changed[id]; ok {
		return
	}
	v.changed[id] = struct{}{}
	v.order = append(v.order, id)
}
