// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - in-process distribution of committed ledger events
//
// every listener obtains its own channel; a message sent while nobody is
// listening is dropped and a listener that falls too far behind loses
// messages rather than blocking the sender
package messagebus
