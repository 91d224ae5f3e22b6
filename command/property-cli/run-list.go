// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/propertystore/fault"
	"github.com/bitmark-inc/propertystore/property"
	"github.com/bitmark-inc/propertystore/recordaccess"
)

type listEntry struct {
	Key   uint32 `json:"key"`
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

type listReply struct {
	Owner      string      `json:"owner"`
	ID         uint64      `json:"id"`
	Properties []listEntry `json:"properties"`
	Damaged    bool        `json:"damaged,omitempty"`
}

func runList(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	kind, id, err := ownerOf(c)
	if nil != err {
		return err
	}

	changes := recordaccess.New(m.store)
	defer changes.Abort()

	owner, err := loadOwner(changes, kind, id, false)
	if nil != err {
		return err
	}

	properties, err := property.NewTraverser().Properties(owner, changes)
	damaged := fault.ErrInconsistentChain == err
	if nil != err && !damaged {
		return err
	}

	reply := listReply{
		Owner:      kind.String(),
		ID:         id,
		Properties: make([]listEntry, len(properties)),
		Damaged:    damaged,
	}
	for i, p := range properties {
		reply.Properties[i].Key = p.Key
		if nil != p.Err {
			reply.Properties[i].Error = p.Err.Error()
		} else {
			reply.Properties[i].Value = p.Value.String()
		}
	}
	return printJson(m.w, reply)
}
