// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Each error belongs to a class (exists, invalid, length, not found,
// process, record) so callers can test the category with IsErrX.
// Errors from the leveldb layer are never wrapped into these classes:
// they indicate a storage failure and are passed through unchanged.
package fault
