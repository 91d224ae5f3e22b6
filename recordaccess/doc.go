// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package recordaccess - buffer record changes and apply them together
//
// A Set loads each record at most once and hands out the same object
// on every later access, so changes made through one view are seen by
// every other.  Nothing reaches the store until Close, which writes
// all changed records in a single batch.
//
//   changes := recordaccess.New(store)
//   defer changes.Abort()
//   ...
//   err := changes.Close()
package recordaccess
