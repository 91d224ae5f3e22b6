// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/propertystore/record"
	"github.com/bitmark-inc/propertystore/recordaccess"
)

func runDeleteProperties(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	kind, id, err := ownerOf(c)
	if nil != err {
		return err
	}

	changes := recordaccess.New(m.store)
	defer changes.Abort()

	owner, err := loadOwner(changes, kind, id, true)
	if nil != err {
		return err
	}
	err = m.deleter.DeletePropertyChain(owner, changes)
	if nil != err {
		return err
	}
	if err := changes.Close(); nil != err {
		return err
	}
	m.log.Infof("deleted properties of %s: %d", kind, id)

	return printJson(m.w, m.deleter.Statistics())
}

func runDeleteNode(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("id") {
		return fmt.Errorf("node id is required")
	}
	id := c.Uint64("id")

	changes := recordaccess.New(m.store)
	defer changes.Abort()

	node, err := loadOwner(changes, record.NodeKind, id, true)
	if nil != err {
		return err
	}
	err = m.deleter.DeletePropertyChain(node, changes)
	if nil != err {
		return err
	}
	node.SetInUse(false)

	if err := changes.Close(); nil != err {
		return err
	}
	m.log.Infof("deleted node: %d", id)

	return printJson(m.w, m.deleter.Statistics())
}
