// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package diagnostics - route tree diagnostic events to a logger
// channel
//
// A reporter built with fatal set behaves like a debug build of the
// container: the first assertion logs a critical message and panics.
// Otherwise assertions are logged as errors and execution continues
// with the tree's defined fallback result.
package diagnostics
