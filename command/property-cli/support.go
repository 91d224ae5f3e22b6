// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/propertystore/property"
	"github.com/bitmark-inc/propertystore/record"
	"github.com/bitmark-inc/propertystore/recordaccess"
	"github.com/bitmark-inc/propertystore/values"
)

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// the kind and id selected by the owner flags
func ownerOf(c *cli.Context) (record.Kind, uint64, error) {
	if !c.IsSet("id") {
		return 0, record.NoNext, fmt.Errorf("owner id is required")
	}
	kind := record.NodeKind
	if c.Bool("relationship") {
		kind = record.RelationshipKind
	}
	return kind, c.Uint64("id"), nil
}

// an owner that must be in use; change selects a mutable copy
func loadOwner(changes *recordaccess.Set, kind record.Kind, id uint64, change bool) (record.Owner, error) {
	owners, err := changes.Owners(kind)
	if nil != err {
		return nil, err
	}

	var owner record.Owner
	if change {
		owner, err = owners.Change(id)
	} else {
		owner, err = owners.GetOrLoad(id)
	}
	if nil != err {
		return nil, err
	}
	if !owner.InUse() {
		return nil, fmt.Errorf("%s: %d is not in use", kind, id)
	}
	return owner, nil
}

// TYPE:VALUE
func parseValue(text string) (values.Value, error) {
	s := strings.SplitN(text, ":", 2)
	if 2 != len(s) {
		return nil, fmt.Errorf("property: %q is not TYPE:VALUE", text)
	}
	return values.Parse(s[0], s[1])
}

// a new property chain with keys 0, 1, 2... for the given items
func createChain(items []string, changes *recordaccess.Set) (uint64, error) {
	encoder := &property.Encoder{}
	blocks := make([]record.PropertyBlock, 0, len(items))
	for i, item := range items {
		v, err := parseValue(item)
		if nil != err {
			return record.NoNext, err
		}
		block, err := encoder.EncodeValue(uint32(i), v, changes)
		if nil != err {
			return record.NoNext, err
		}
		blocks = append(blocks, block)
	}
	return property.NewCreator().CreatePropertyChain(blocks, changes)
}
