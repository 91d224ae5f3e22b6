// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/propertystore/record"
	"github.com/bitmark-inc/propertystore/storage"
	"github.com/bitmark-inc/propertystore/util"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "raw", HasArg: getoptions.NO_ARGUMENT, Short: 'r'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "log-directory", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) < 2 {
		fmt.Printf("usage: %s [--help] [--raw] [--count=N] [--log-directory=DIR] database tag\n", program)
		fmt.Printf(" tags:\n")
		printTags()
		return
	}

	// ------------------
	// start of real main
	// ------------------

	database := arguments[0]
	tag := arguments[1]

	count := -1
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err || count <= 0 {
			exitwithstatus.Message("%s: invalid count: %q", program, options["count"][0])
		}
	}

	if !util.EnsureFileExists(database + ".leveldb") {
		exitwithstatus.Message("%s: missing database: %q", program, database+".leveldb")
	}

	logDirectory := os.TempDir()
	if len(options["log-directory"]) > 0 {
		logDirectory = options["log-directory"][0]
	}
	err = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "dumpdb.log",
		Size:      1024 * 1024,
		Count:     2,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	if nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	err = storage.Initialise(database, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: open database: %q  error: %s", program, database, err)
	}
	defer storage.Finalise()

	p := poolByTag(tag)
	if nil == p {
		exitwithstatus.Message("%s: no pool corresponding to: %q", program, tag)
	}

	kind := record.Kind(p.Prefix())
	decode := kind.Valid() && 0 == len(options["raw"])

	n := 0
	limit := func() error {
		if count >= 0 && n >= count {
			return errStop
		}
		n += 1
		return nil
	}

	if decode {
		err = storage.NewRecordStore().Scan(kind, func(r record.Record) error {
			if err := limit(); nil != err {
				return err
			}
			fmt.Printf("%d → %s\n", r.ID(), r)
			return nil
		})
	} else {
		err = p.NewCursor().Map(func(key []byte, value []byte) error {
			if err := limit(); nil != err {
				return err
			}
			fmt.Printf("%x → %x\n", key, value)
			return nil
		})
	}
	if nil != err && errStop != err {
		exitwithstatus.Message("%s: fetch error: %s", program, err)
	}
}

type stopError string

func (e stopError) Error() string { return string(e) }

const errStop = stopError("stop")

// print all available tags
func printTags() {
	poolType := reflect.TypeOf(storage.Pool)
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		fmt.Printf("       %s → %s\n", prefixTag, fieldInfo.Name)
	}
}

// scan each pool field to locate tag
func poolByTag(tag string) *storage.PoolHandle {
	poolType := reflect.TypeOf(storage.Pool)
	poolValue := reflect.ValueOf(storage.Pool)

	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		if tag == fieldInfo.Tag.Get("prefix") {
			return poolValue.Field(i).Interface().(*storage.PoolHandle)
		}
	}
	return nil
}
