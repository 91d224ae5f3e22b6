// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package recordaccess

import (
	"github.com/bitmark-inc/propertystore/fault"
	"github.com/bitmark-inc/propertystore/record"
)

// Store - the record store a Set reads from and writes to
type Store interface {
	Read(kind record.Kind, id uint64) (record.Record, error)
	Allocate(kind record.Kind) (uint64, error)
	Apply(records []record.Record) error
}

// Set - pending record changes of one operation
type Set struct {
	store  Store
	views  map[record.Kind]*view
	closed bool
}

// New - an empty set over a store
func New(store Store) *Set {
	s := &Set{
		store: store,
		views: make(map[record.Kind]*view),
	}
	for _, kind := range record.Kinds {
		s.views[kind] = &view{
			kind:    kind,
			store:   store,
			records: make(map[uint64]record.Record),
			changed: make(map[uint64]struct{}),
		}
	}
	return s
}

// Nodes - node records
func (s *Set) Nodes() *OwnerRecords {
	return &OwnerRecords{view: s.views[record.NodeKind]}
}

// Relationships - relationship records
func (s *Set) Relationships() *OwnerRecords {
	return &OwnerRecords{view: s.views[record.RelationshipKind]}
}

// Owners - records of an owner kind
func (s *Set) Owners(kind record.Kind) (*OwnerRecords, error) {
	if !kind.IsOwner() {
		return nil, fault.ErrNotOwnerRecord
	}
	return &OwnerRecords{view: s.views[kind]}, nil
}

// Properties - property records
func (s *Set) Properties() *PropertyRecords {
	return &PropertyRecords{view: s.views[record.PropertyKind]}
}

// Strings - string value records
func (s *Set) Strings() *DynamicRecords {
	return &DynamicRecords{view: s.views[record.StringKind]}
}

// Arrays - array value records
func (s *Set) Arrays() *DynamicRecords {
	return &DynamicRecords{view: s.views[record.ArrayKind]}
}

// Dynamic - value records of a string or array kind
func (s *Set) Dynamic(kind record.Kind) (*DynamicRecords, error) {
	switch kind {
	case record.StringKind, record.ArrayKind:
		return &DynamicRecords{view: s.views[kind]}, nil
	default:
		return nil, fault.ErrInvalidRecordKind
	}
}

// Changed - number of records that Close would write
func (s *Set) Changed() int {
	n := 0
	for _, v := range s.views {
		n += len(v.order)
	}
	return n
}

// Close - write every changed record in one batch
//
// records are written kind by kind in record.Kinds order and in the
// order they were first changed; a set cannot be used after Close
func (s *Set) Close() error {
	if s.closed {
		return fault.ErrAccessSetClosed
	}
	s.closed = true

	records := make([]record.Record, 0, s.Changed())
	for _, kind := range record.Kinds {
		v := s.views[kind]
		for _, id := range v.order {
			records = append(records, v.records[id])
		}
	}
	s.release()

	return s.store.Apply(records)
}

// Abort - drop every change, harmless after Close
func (s *Set) Abort() {
	if s.closed {
		return
	}
	s.closed = true
	s.release()
}

func (s *Set) release() {
	for _, v := range s.views {
		v.records = nil
		v.changed = nil
		v.order = nil
		v.closed = true
	}
}
