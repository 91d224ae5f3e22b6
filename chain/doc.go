// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - walk record chains that may be damaged
//
// A walk always ends: at the NoNext terminator, at the first record
// that is not in use, or at the first record seen twice.  The set of
// seen ids only grows with the records actually walked.
package chain
