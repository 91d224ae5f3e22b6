// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - fixed size records of the property store
//
// Every record is addressed by a dense uint64 id within its kind;
// links between records are plain ids with NoNext as terminator.
//
// Layouts (all integers big endian, flags bit 0 = in use):
//
//   node          flags(1) ++ next property(8)
//   relationship  flags(1) ++ first node(8) ++ second node(8) ++ type(4) ++ next property(8)
//   property      flags(1) ++ prev(8) ++ next(8) ++ 4 × block
//   block         key(4) ++ type(1) ++ size(1) ++ payload(8)
//   dynamic       flags(1) ++ type(1) ++ length(2) ++ next block(8) ++ data(120)
//
// A block with type NoType is an empty slot.  Inline block types keep
// the value in the payload; String and Array blocks keep the id of
// the first record of a dynamic chain in the payload.
package record
