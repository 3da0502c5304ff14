// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package social - profiles, follows, direct messages and posts
//
// records here are last write wins; tokenising a post and claiming its
// shards go through the shard contract in the same batch
package social
