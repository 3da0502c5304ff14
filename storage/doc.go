// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. post         = post identifier as varint length ++ bytes
// 4. account      = key variant ++ 32 byte ed25519 public key
// 5. index        = big endian uint64 (8 bytes)
// 6. N            = big endian uint64 (8 bytes)
// 7. *others*     = byte values of various length
//
// Shard ledger:
//
//	M ++ post                  - display metadata
//	                             data: decimal(1) ++ packed name ++ packed symbol
//	C ++ post                  - engagement state
//	                             data: threshold(N) ++ build count(N) ++ flags(1)
//	S ++ post                  - shard count and first global index
//	                             data: total(N) ++ base(N)
//	O ++ post ++ local index   - current owner of one shard
//	                             data: account
//	H ++ post ++ account       - number of shards of post held by account
//	                             data: N
//	X ++ global index          - post that owns a global shard index
//	                             data: local index(N) ++ post
//	B ++ account               - aggregate balance
//	                             data: N
//	A ++ owner ++ spender      - allowance
//	                             data: amount(N) ++ expiration ledger(N)
//
// Ledger:
//
//	G ++ name                  - global counters (ledger sequence, next shard index, ...)
//	                             data: N
//	L ++ kind(1) ++ key        - record lifetime
//	                             data: live until ledger(N)
//
// Social:
//
//	p ++ account               - profile
//	                             data: username
//	f ++ follower ++ followee  - follow membership
//	                             data: 0x01
//	n ++ sender ++ receiver    - next message number of a conversation
//	                             data: N
//	m ++ sender ++ receiver ++ number
//	                           - message
//	                             data: text
//	l ++ number                - flat post list
//	                             data: author ++ content
//	i ++ post                  - tokenised post info
//	                             data: claimed(N) ++ creator ++ metadata uri
//
// Testing:
//
//	Z ++ key                   - testing data
package storage
