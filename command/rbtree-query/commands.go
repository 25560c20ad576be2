// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	case "run", "start":
		return false // continue processing

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--descending] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")
		fmt.Printf("  run                        (start)  - read requests from standard input (default)\n\n")

		fmt.Printf("requests:\n\n")
		fmt.Printf("  k KEY                               - insert KEY\n")
		fmt.Printf("  q A B                               - print the number of keys between A and B inclusive\n")
		fmt.Printf("  d KEY                               - erase KEY\n")
		fmt.Printf("  f KEY                               - print 1 if KEY is present, otherwise 0\n")
		fmt.Printf("  c                                   - verify the tree structure\n")
		fmt.Printf("  p                                   - draw the tree\n")
		fmt.Printf("\n")
		return true
	}
}
