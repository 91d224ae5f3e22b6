// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

// Configuration - settings of the property store
type Configuration struct {
	LogInconsistentDataOnDeletion bool `gluamapper:"log_inconsistent_data_on_deletion" json:"log_inconsistent_data_on_deletion"`
}

// Log - where the deleter reports inconsistent chains
//
// satisfied by *logger.L
type Log interface {
	Warn(message string)
}
