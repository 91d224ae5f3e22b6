// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/propertystore/property"
	"github.com/bitmark-inc/propertystore/record"
	"github.com/bitmark-inc/propertystore/recordaccess"
)

type checkReply struct {
	Owner    string   `json:"owner"`
	ID       uint64   `json:"id"`
	Failures []string `json:"failures"`
}

func runCheck(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if !c.Bool("all") {
		kind, id, err := ownerOf(c)
		if nil != err {
			return err
		}
		reply, err := checkOwner(m.store, kind, id)
		if nil != err {
			return err
		}
		return printJson(m.w, reply)
	}

	replies := []*checkReply{}
	for _, kind := range []record.Kind{record.NodeKind, record.RelationshipKind} {
		err := m.store.Scan(kind, func(r record.Record) error {
			if !r.InUse() {
				return nil
			}
			reply, err := checkOwner(m.store, kind, r.ID())
			if nil != err {
				return err
			}
			if nil != reply && 0 != len(reply.Failures) {
				replies = append(replies, reply)
			}
			return nil
		})
		if nil != err {
			return err
		}
	}
	m.log.Infof("check found: %d damaged owners", len(replies))
	return printJson(m.w, replies)
}

// nil reply for an owner that is not in use
func checkOwner(store recordaccess.Store, kind record.Kind, id uint64) (*checkReply, error) {
	changes := recordaccess.New(store)
	defer changes.Abort()

	owners, err := changes.Owners(kind)
	if nil != err {
		return nil, err
	}
	owner, err := owners.GetOrLoad(id)
	if nil != err {
		return nil, err
	}
	if !owner.InUse() {
		return nil, nil
	}

	failures, err := property.Check(owner, changes)
	if nil != err {
		return nil, err
	}
	reply := &checkReply{
		Owner:    kind.String(),
		ID:       id,
		Failures: make([]string, len(failures)),
	}
	for i, f := range failures {
		reply.Failures[i] = f.String()
	}
	return reply, nil
}
