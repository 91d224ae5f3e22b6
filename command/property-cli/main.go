// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/propertystore/property"
	"github.com/bitmark-inc/propertystore/storage"
)

type metadata struct {
	config  *Configuration
	store   *storage.RecordStore
	deleter *property.Deleter
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// flags shared by every command acting on one owner
var ownerFlags = []cli.Flag{
	cli.Uint64Flag{
		Name:  "id, i",
		Usage: "*owner record `ID`",
	},
	cli.BoolFlag{
		Name:  "relationship, r",
		Usage: " owner is a relationship (default is a node)",
	},
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "property-cli"
	app.Usage = "inspect and maintain property chains"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "property-cli.conf",
			Usage: " Lua configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create-node",
			Usage:     "create a node with optional properties",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "property, p",
					Usage: " property in order of keys `TYPE:VALUE` (repeatable)",
				},
			},
			Action: runCreateNode,
		},
		{
			Name:      "create-relationship",
			Usage:     "create a relationship between two nodes",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "first, f",
					Usage: "*first node `ID`",
				},
				cli.Uint64Flag{
					Name:  "second, s",
					Usage: "*second node `ID`",
				},
				cli.UintFlag{
					Name:  "type, t",
					Usage: " relationship `TYPE`",
				},
				cli.StringSliceFlag{
					Name:  "property, p",
					Usage: " property in order of keys `TYPE:VALUE` (repeatable)",
				},
			},
			Action: runCreateRelationship,
		},
		{
			Name:      "set",
			Usage:     "add or replace one property",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.UintFlag{
					Name:  "key, k",
					Usage: "*property `KEY`",
				},
				cli.StringFlag{
					Name:  "type, t",
					Value: "string",
					Usage: " value `TYPE` [bool|int|float|string] with [] suffix for arrays",
				},
				cli.StringFlag{
					Name:  "value, V",
					Value: "",
					Usage: " the `VALUE`, array elements separated by commas",
				},
			}, ownerFlags...),
			Action: runSet,
		},
		{
			Name:      "remove",
			Usage:     "remove one property",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.UintFlag{
					Name:  "key, k",
					Usage: "*property `KEY`",
				},
			}, ownerFlags...),
			Action: runRemove,
		},
		{
			Name:      "list",
			Usage:     "list the properties of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     ownerFlags,
			Action:    runList,
		},
		{
			Name:      "check",
			Usage:     "report damaged property and value chains without changing them",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.BoolFlag{
					Name:  "all, a",
					Usage: "+check every node and relationship",
				},
			}, ownerFlags...),
			Action: runCheck,
		},
		{
			Name:      "delete-properties",
			Usage:     "delete every property of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     ownerFlags,
			Action:    runDeleteProperties,
		},
		{
			Name:      "delete-node",
			Usage:     "delete a node together with its properties",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, i",
					Usage: "*node `ID`",
				},
			},
			Action: runDeleteNode,
		},
		{
			Name:      "version",
			Usage:     "display property-cli version",
			ArgsUsage: "",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and open the store
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		file := c.GlobalString("config-file")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		configuration, err := getConfiguration(file)
		if nil != err {
			return err
		}

		err = logger.Initialise(configuration.Logging)
		if nil != err {
			return err
		}

		log := logger.New("property")
		log.Infof("database: %s", configuration.Database.Name)

		err = storage.Initialise(configuration.Database.Name, storage.ReadWrite)
		if nil != err {
			log.Criticalf("storage initialise error: %s", err)
			logger.Finalise()
			return err
		}

		c.App.Metadata["config"] = &metadata{
			config:  configuration,
			store:   storage.NewRecordStore(),
			deleter: property.NewDeleter(configuration.Deletion, log),
			log:     log,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// close the store
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.verbose {
			printJson(m.e, m.deleter.Statistics())
		}
		storage.Finalise()
		m.log.Info("finished")
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
