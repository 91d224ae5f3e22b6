// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

import (
	"sync"

	"github.com/bitmark-inc/propertystore/counter"
)

// Statistics - work done by a deleter since it was created
type Statistics struct {
	Chains          uint64 `json:"chains"`
	PropertyRecords uint64 `json:"propertyRecords"`
	DynamicRecords  uint64 `json:"dynamicRecords"`
	Inconsistencies uint64 `json:"inconsistencies"`
	LastIncident    string `json:"lastIncident,omitempty"`
}

type statistics struct {
	chains          counter.Counter
	propertyRecords counter.Counter
	dynamicRecords  counter.Counter
	inconsistencies counter.Counter

	sync.Mutex
	lastIncident string
}

// incident id of the latest damaged owner, logged or not
func (s *statistics) incident(id string) {
	s.Lock()
	s.lastIncident = id
	s.Unlock()
}

func (s *statistics) snapshot() Statistics {
	s.Lock()
	last := s.lastIncident
	s.Unlock()

	return Statistics{
		Chains:          s.chains.Uint64(),
		PropertyRecords: s.propertyRecords.Uint64(),
		DynamicRecords:  s.dynamicRecords.Uint64(),
		Inconsistencies: s.inconsistencies.Uint64(),
		LastIncident:    last,
	}
}
