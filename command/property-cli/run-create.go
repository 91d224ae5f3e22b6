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

type createReply struct {
	Kind     string `json:"kind"`
	ID       uint64 `json:"id"`
	Property uint64 `json:"firstProperty"`
}

func runCreateNode(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	changes := recordaccess.New(m.store)
	defer changes.Abort()

	head, err := createChain(c.StringSlice("property"), changes)
	if nil != err {
		return err
	}

	nodes := changes.Nodes()
	id, err := nodes.NextID()
	if nil != err {
		return err
	}
	node, err := nodes.Create(id)
	if nil != err {
		return err
	}
	node.SetNextProperty(head)

	if err := changes.Close(); nil != err {
		return err
	}
	m.log.Infof("created node: %d", id)

	return printJson(m.w, createReply{
		Kind:     record.NodeKind.String(),
		ID:       id,
		Property: head,
	})
}

func runCreateRelationship(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("first") || !c.IsSet("second") {
		return fmt.Errorf("first and second node are required")
	}

	changes := recordaccess.New(m.store)
	defer changes.Abort()

	for _, n := range []uint64{c.Uint64("first"), c.Uint64("second")} {
		if _, err := loadOwner(changes, record.NodeKind, n, false); nil != err {
			return err
		}
	}

	head, err := createChain(c.StringSlice("property"), changes)
	if nil != err {
		return err
	}

	relationships := changes.Relationships()
	id, err := relationships.NextID()
	if nil != err {
		return err
	}
	owner, err := relationships.Create(id)
	if nil != err {
		return err
	}
	r := owner.(*record.RelationshipRecord)
	r.FirstNode = c.Uint64("first")
	r.SecondNode = c.Uint64("second")
	r.Type = uint32(c.Uint("type"))
	r.SetNextProperty(head)

	if err := changes.Close(); nil != err {
		return err
	}
	m.log.Infof("created relationship: %d", id)

	return printJson(m.w, createReply{
		Kind:     record.RelationshipKind.String(),
		ID:       id,
		Property: head,
	})
}
