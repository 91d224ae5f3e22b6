// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/bitmark-inc/propertystore/record"
)

// Loader - fetch one link of a chain
//
// an error is a store failure and stops the walk
type Loader func(id uint64) (record.Link, error)

// Walker - bounded forward walk over a linked chain
//
// usage follows the leveldb iterator:
//
//   w := chain.New(start, load)
//   for w.Next() {
//       r := w.Record()
//       ...
//   }
//   if err := w.Err(); nil != err {
//       ...
//   }
//   if inconsistency := w.Inconsistency(); nil != inconsistency {
//       ...
//   }
type Walker struct {
	next          uint64
	load          Loader
	visited       map[uint64]struct{}
	chain         []record.Link
	current       record.Link
	inconsistency *Inconsistency
	err           error
	done          bool
}

// New - a walker starting at id start, NoNext gives an empty walk
func New(start uint64, load Loader) *Walker {
	return &Walker{
		next:    start,
		load:    load,
		visited: make(map[uint64]struct{}),
	}
}

// Next - advance to the next record, false at the end of the walk
func (w *Walker) Next() bool {
	w.current = nil
	if w.done {
		return false
	}
	if record.NoNext == w.next {
		w.done = true
		return false
	}

	id := w.next
	r, err := w.load(id)
	if nil != err {
		w.err = err
		w.done = true
		return false
	}

	if !r.InUse() {
		w.inconsistency = &Inconsistency{
			Kind:      Dangling,
			Chain:     w.yielded(),
			Offending: id,
			Record:    r,
		}
		w.done = true
		return false
	}

	if _, seen := w.visited[id]; seen {
		w.inconsistency = &Inconsistency{
			Kind:      Cycle,
			Chain:     append(w.yielded(), r),
			Offending: id,
			Record:    r,
		}
		w.done = true
		return false
	}

	w.visited[id] = struct{}{}
	w.chain = append(w.chain, r)
	w.current = r
	w.next = r.Next()
	return true
}

// Record - the record yielded by the last Next
func (w *Walker) Record() record.Link {
	return w.current
}

// Err - a store failure that ended the walk
func (w *Walker) Err() error {
	return w.err
}

// Inconsistency - the chain shape problem that ended the walk, if any
func (w *Walker) Inconsistency() *Inconsistency {
	return w.inconsistency
}

// Collect - drain the walker
func (w *Walker) Collect() ([]record.Link, *Inconsistency, error) {
	for w.Next() {
	}
	return w.yielded(), w.inconsistency, w.err
}

func (w *Walker) yielded() []record.Link {
	chain := make([]record.Link, len(w.chain))
	copy(chain, w.chain)
	return chain
}
