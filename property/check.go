// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

import (
	"github.com/bitmark-inc/propertystore/record"
	"github.com/bitmark-inc/propertystore/recordaccess"
)

// Check - find every damaged chain under an owner without changing
// anything
//
// the value chains of every reachable property record are checked
// even when the property chain itself is damaged
func Check(owner record.Owner, changes *recordaccess.Set) ([]Failure, error) {
	traverser := NewTraverser()

	var failures []Failure

	links, inconsistency, err := traverser.PropertyChain(owner.NextProperty(), changes).Collect()
	if nil != err {
		return nil, err
	}
	if nil != inconsistency {
		failures = append(failures, propertyFailure(inconsistency))
	}

	for _, link := range links {
		p := link.(*record.PropertyRecord)
		for i := range p.Blocks {
			block := &p.Blocks[i]
			if !block.IsDynamic() {
				continue
			}
			w, err := traverser.ValueChain(block, changes)
			if nil != err {
				return nil, err
			}
			_, inconsistency, err := w.Collect()
			if nil != err {
				return nil, err
			}
			if nil != inconsistency {
				failures = append(failures, valueFailure(inconsistency, p, block))
			}
		}
	}
	return failures, nil
}
