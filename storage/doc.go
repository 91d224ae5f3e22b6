// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk record store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++        = concatenation of byte data
// 3. record id = big endian uint64 (8 bytes)
// 4. kind      = record kind byte, same as the pool prefix
// 5. count     = big endian uint64 (8 bytes)
//
// Records:
//
//   N ++ record id    - node records
//   R ++ record id    - relationship records
//   P ++ record id    - property records
//   S ++ record id    - string value records
//   A ++ record id    - array value records
//                       data: packed record (see package record)
//
// Identifiers:
//
//   I ++ kind         - next id to allocate for the kind
//                       data: count
//
// Testing:
//   Z ++ key          - testing data
//
// All writes go through a single leveldb batch, so a set of records
// is either written completely or not at all.
package storage
