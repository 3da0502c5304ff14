// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shards - fractional ownership of posts
//
// A post is issued as a fixed number of indivisible shards, all owned
// by the creating account.  Every shard has a local index within its
// post and a global index allocated from a single counter, so that a
// global index always resolves back to exactly one post.
//
// Alongside the per shard owner table the package keeps a fungible
// style balance per account, allowances for delegated spending and a
// per post engagement counter that signals fractionalisation once,
// on the build that reaches the post's threshold.
//
// Every operation runs inside one storage batch: it either commits
// completely or leaves no trace, and its events are published only
// after the commit.
package shards
