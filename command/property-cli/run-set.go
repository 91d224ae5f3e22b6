// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/propertystore/property"
	"github.com/bitmark-inc/propertystore/recordaccess"
	"github.com/bitmark-inc/propertystore/values"
)

func runSet(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	kind, id, err := ownerOf(c)
	if nil != err {
		return err
	}
	if !c.IsSet("key") {
		return fmt.Errorf("key is required")
	}
	key := uint32(c.Uint("key"))

	value, err := values.Parse(c.String("type"), c.String("value"))
	if nil != err {
		return err
	}

	changes := recordaccess.New(m.store)
	defer changes.Abort()

	owner, err := loadOwner(changes, kind, id, true)
	if nil != err {
		return err
	}
	err = property.NewCreator().SetProperty(owner, key, value, changes)
	if nil != err {
		return err
	}
	if err := changes.Close(); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "%s: %d  key: %d = %s\n", kind, id, key, value)
	}
	return nil
}

func runRemove(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	kind, id, err := ownerOf(c)
	if nil != err {
		return err
	}
	if !c.IsSet("key") {
		return fmt.Errorf("key is required")
	}
	key := uint32(c.Uint("key"))

	changes := recordaccess.New(m.store)
	defer changes.Abort()

	owner, err := loadOwner(changes, kind, id, true)
	if nil != err {
		return err
	}
	err = m.deleter.RemoveProperty(owner, key, changes)
	if nil != err {
		return err
	}
	return changes.Close()
}
