// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"

	"github.com/bitmark-inc/propertystore/record"
)

// Kind - the shape problem found in a chain
type Kind int

// the kinds of inconsistency
const (
	Cycle    Kind = iota // a forward link returns to a record of the same walk
	Dangling             // a forward link reaches a record that is not in use
)

func (k Kind) String() string {
	switch k {
	case Cycle:
		return "cycle"
	case Dangling:
		return "unused record"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Inconsistency - how a walk ended early
//
// Chain holds the records yielded before the problem; for a cycle it
// also ends with the repeated record.  Record is the record at the
// Offending id.
type Inconsistency struct {
	Kind      Kind
	Chain     []record.Link
	Offending uint64
	Record    record.Link
}

func (i *Inconsistency) Error() string {
	return fmt.Sprintf("%s at record %d after %d records", i.Kind, i.Offending, len(i.Chain))
}
