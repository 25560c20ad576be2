// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	descending bool
	numeric    bool
	erase      []string
	verbose    bool
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "rbtree-dump"
	app.Usage = "build a red-black tree from the argument keys and display it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "descending, d",
			Usage: " order keys from largest to smallest",
		},
		cli.BoolFlag{
			Name:  "numeric, n",
			Usage: " compare keys as integers instead of strings",
		},
		cli.StringSliceFlag{
			Name:  "erase, e",
			Usage: " erase `KEY` after all keys are inserted (repeatable)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "print",
			Usage:     "draw the tree as text",
			ArgsUsage: "KEY...",
			Flags:     []cli.Flag{},
			Action:    runPrint,
		},
		{
			Name:      "dot",
			Usage:     "write the tree as a Graphviz digraph",
			ArgsUsage: "KEY...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, N",
					Value: "rbtree",
					Usage: " graph `NAME`",
				},
				cli.BoolFlag{
					Name:  "nil, z",
					Usage: " show the sentinel leaves",
				},
			},
			Action: runDot,
		},
		{
			Name:      "range",
			Usage:     "count the keys between two bounds inclusive",
			ArgsUsage: "LOW HIGH KEY...",
			Flags:     []cli.Flag{},
			Action:    runRange,
		},
		{
			Name:      "version",
			Usage:     "display rbtree-dump version",
			ArgsUsage: "",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			descending: c.GlobalBool("descending"),
			numeric:    c.GlobalBool("numeric"),
			erase:      c.GlobalStringSlice("erase"),
			verbose:    c.GlobalBool("verbose"),
			e:          c.App.ErrWriter,
			w:          c.App.Writer,
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
