// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the ledger sequence number and record lifetimes
//
// the sequence is advanced by a background clock; records touched by
// a state change have their lifetime extended so that they stay live
// for at least the configured threshold
package ledger
