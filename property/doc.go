// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package property - property chains of nodes and relationships
//
// An owner points at the first record of a doubly linked chain of
// property records.  Each property record holds up to four blocks,
// one per key.  Values that do not fit a block are kept in a singly
// linked chain of string or array records referenced by the block.
//
// Deleting a chain never fails because of the shape of the chain:
// cycles and records that are no longer in use end the walk, whatever
// was reached is freed, the owner is detached and a single warning
// describes what was found.  Only store failures are returned.
package property
