// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// The file is executed by an embedded Lua interpreter with the standard
// libraries loaded, so it can call os.getenv or compute paths from
// arg[0], and must finish with a return of a single table.  That table
// is mapped onto the caller's structure using the "gluamapper" field
// tags; names are matched without regard to case.
package configuration
