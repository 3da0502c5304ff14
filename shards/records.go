// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shards

import (
	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/storage"
	"github.com/bewd-social/shardd/util"
)

// reader - either a batch (sees its own writes) or committed data
type reader interface {
	Get(*storage.PoolHandle, []byte) []byte
	GetNB(*storage.PoolHandle, []byte) (uint64, []byte)
}

type committed struct{}

func (committed) Get(p *storage.PoolHandle, key []byte) []byte {
	return p.Get(key)
}

func (committed) GetNB(p *storage.PoolHandle, key []byte) (uint64, []byte) {
	return p.GetNB(key)
}

// key of the global counter for the next unallocated shard
var nextShardKey = []byte("next-shard")

// post ++ ...
func postKey(postID string) []byte {
	return util.PackBytes(nil, []byte(postID))
}

// post ++ local index
func ownerKey(postID string, local uint64) []byte {
	return append(postKey(postID), storage.EncodeN(local)...)
}

// post ++ account
func holdingKey(postID string, a *account.Account) []byte {
	return append(postKey(postID), a.Bytes()...)
}

// owner ++ spender
func allowanceKey(from *account.Account, spender *account.Account) []byte {
	return append(from.Bytes(), spender.Bytes()...)
}

// readN - big endian count, zero if absent
func readN(r reader, p *storage.PoolHandle, key []byte) uint64 {
	buffer := r.Get(p, key)
	if nil == buffer {
		return 0
	}
	if len(buffer) < 8 {
		logger.Panicf("shards: truncated count record for: %x", key)
	}
	return storage.DecodeN(buffer)
}

func readAccount(r reader, p *storage.PoolHandle, key []byte) *account.Account {
	buffer := r.Get(p, key)
	if nil == buffer {
		return nil
	}
	a, err := account.AccountFromBytes(buffer)
	logger.PanicIfError("shards: stored account", err)
	return a
}
