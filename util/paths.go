// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - create a directory (and parents) if it is missing
func EnsureDirectory(name string) error {
	if info, err := os.Stat(name); nil == err {
		if !info.IsDir() {
			return &os.PathError{Op: "mkdir", Path: name, Err: os.ErrExist}
		}
		return nil
	}
	return os.MkdirAll(name, 0o700)
}
