// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shards

import (
	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/storage"
)

// MaximumShards - largest number of shards issued for one post
const MaximumShards = 100000

// shard count and first global index of a post
type shardCount struct {
	Total uint64
	Base  uint64
}

func readShardCount(r reader, postID string) (*shardCount, error) {
	buffer := r.Get(storage.Pool.ShardCount, postKey(postID))
	if nil == buffer {
		return nil, fault.MissingRecord
	}
	if 16 != len(buffer) {
		return nil, fault.TruncatedRecord
	}
	return &shardCount{
		Total: storage.DecodeN(buffer[:8]),
		Base:  storage.DecodeN(buffer[8:]),
	}, nil
}

// issueShards - allocate global indices and give every shard to admin
//
// returns the first global index
func (b *Batch) issueShards(admin *account.Account, postID string, total uint64) uint64 {
	trx := b.trx

	base := readN(trx, storage.Pool.Globals, nextShardKey)
	trx.PutN(storage.Pool.Globals, nextShardKey, base+total)

	owner := admin.Bytes()
	for local := uint64(0); local < total; local += 1 {
		trx.Put(storage.Pool.ShardOwners, ownerKey(postID, local), owner)

		index := append(storage.EncodeN(local), postID...)
		trx.Put(storage.Pool.ShardIndex, storage.EncodeN(base+local), index)
	}

	if total > 0 {
		trx.PutN(storage.Pool.Holdings, holdingKey(postID, admin), total)
	}

	count := append(storage.EncodeN(total), storage.EncodeN(base)...)
	trx.Put(storage.Pool.ShardCount, postKey(postID), count)

	return base
}

func readShardOwner(r reader, postID string, local uint64) *account.Account {
	return readAccount(r, storage.Pool.ShardOwners, ownerKey(postID, local))
}

// moveShard - change the owner of one shard, from must be its current owner
func (b *Batch) moveShard(from *account.Account, to *account.Account, postID string, local uint64) error {
	count, err := readShardCount(b.trx, postID)
	if nil != err {
		return err
	}
	if local >= count.Total {
		return fault.IndexOutOfRange
	}

	owner := readShardOwner(b.trx, postID, local)
	if nil == owner {
		logger.Panicf("shards: post: %q  missing owner of shard: %d", postID, local)
	}
	if !owner.Equal(from) {
		return fault.NotShardOwner
	}

	b.trx.Put(storage.Pool.ShardOwners, ownerKey(postID, local), to.Bytes())

	if err := b.adjustHolding(postID, from, -1); nil != err {
		return err
	}
	return b.adjustHolding(postID, to, 1)
}

func readHolding(r reader, postID string, a *account.Account) uint64 {
	return readN(r, storage.Pool.Holdings, holdingKey(postID, a))
}

func (b *Batch) adjustHolding(postID string, a *account.Account, delta int) error {
	key := holdingKey(postID, a)
	n := readN(b.trx, storage.Pool.Holdings, key)
	switch {
	case delta < 0 && uint64(-delta) > n:
		return fault.InsufficientBalance
	case delta < 0:
		n -= uint64(-delta)
	default:
		n += uint64(delta)
	}
	if 0 == n {
		b.trx.Delete(storage.Pool.Holdings, key)
	} else {
		b.trx.PutN(storage.Pool.Holdings, key, n)
	}
	return nil
}

// resolveShard - post and local index of a global shard index
func resolveShard(r reader, index uint64) (string, uint64, error) {
	local, postID := r.GetNB(storage.Pool.ShardIndex, storage.EncodeN(index))
	if nil == postID {
		return "", 0, fault.UnmappedShard
	}
	return string(postID), local, nil
}
