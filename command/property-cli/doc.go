// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// property-cli - create, list, check and delete the properties of
// nodes and relationships in a property store
//
// the Lua configuration file returns a table such as:
//
//   local M = {}
//   M.data_directory = "."
//   M.database = { directory = "data", name = "properties" }
//   M.deletion = { log_inconsistent_data_on_deletion = true }
//   M.logging = { directory = "log", levels = { DEFAULT = "warn" } }
//   return M
package main
