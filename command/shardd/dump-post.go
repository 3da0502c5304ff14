// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bewd-social/shardd/ledger"
	"github.com/bewd-social/shardd/shards"
)

type postDump struct {
	Post      *shards.Post     `json:"post"`
	Metadata  *shards.Metadata `json:"metadata"`
	LiveUntil uint64           `json:"liveUntil"`
	Owners    []shards.Owner   `json:"owners"`
}

// read a post with its full owner table
func dumpPost(contract shards.Shards, postID string) (*postDump, error) {
	post, err := contract.Post(postID)
	if nil != err {
		return nil, err
	}
	metadata, err := contract.Metadata(postID)
	if nil != err {
		return nil, err
	}
	liveUntil, err := contract.LiveUntil(ledger.Post, []byte(postID))
	if nil != err {
		return nil, err
	}

	dump := &postDump{
		Post:      post,
		Metadata:  metadata,
		LiveUntil: liveUntil,
		Owners:    make([]shards.Owner, 0, post.TotalShards),
	}

	start := uint64(0)
	for {
		owners, err := contract.Owners(postID, start, shards.MaximumOwnersCount)
		if nil != err {
			return nil, err
		}
		if 0 == len(owners) {
			break
		}
		dump.Owners = append(dump.Owners, owners...)
		start = owners[len(owners)-1].Index + 1
	}

	return dump, nil
}
