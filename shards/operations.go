// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shards

import (
	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/authority"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/storage"
)

func requireAuth(auth authority.Authoriser, a *account.Account) error {
	if nil == auth || nil == a {
		return fault.Unauthorized
	}
	return auth.RequireAuth(a)
}

func requireAccounts(accounts ...*account.Account) error {
	for _, a := range accounts {
		if nil == a {
			return fault.MissingParameters
		}
	}
	return nil
}

// InitializePost - issue all shards of a new post to admin
//
// returns the first global index of the post's shards
func (b *Batch) InitializePost(auth authority.Authoriser, admin *account.Account, postID string, metadata Metadata, threshold uint64, totalShards uint64, isRWA bool) (uint64, error) {
	if err := requireAuth(auth, admin); nil != err {
		return 0, err
	}
	if metadata.Decimal > MaximumDecimal {
		return 0, fault.InvalidMetadata
	}
	if 0 == len(postID) {
		return 0, fault.InvalidPostIdentifier
	}
	if totalShards > MaximumShards {
		return 0, fault.ShardCountTooLarge
	}
	if nil != b.trx.Get(storage.Pool.PostConfig, postKey(postID)) {
		return 0, fault.PostExists
	}

	b.trx.Put(storage.Pool.Metadata, postKey(postID), metadata.pack())

	config := PostConfig{
		Threshold: threshold,
		IsRWA:     isRWA,
	}
	b.trx.Put(storage.Pool.PostConfig, postKey(postID), config.pack())

	base := b.issueShards(admin, postID, totalShards)
	if err := b.receiveBalance(admin, totalShards); nil != err {
		return 0, err
	}

	b.extendPost(postID)
	b.extendAccounts(admin)

	b.emit(Event{
		Kind:   EventMint,
		PostID: postID,
		To:     admin,
		Amount: int64(totalShards),
		Index:  base,
	})
	return base, nil
}

// BuildPost - count one build of a post
//
// the second result is true only on the build that reaches the threshold
func (b *Batch) BuildPost(auth authority.Authoriser, postID string, builder *account.Account) (*PostConfig, bool, error) {
	if err := requireAuth(auth, builder); nil != err {
		return nil, false, err
	}
	config, err := readPostConfig(b.trx, postID)
	if nil != err {
		return nil, false, err
	}

	signal := config.build()
	b.trx.Put(storage.Pool.PostConfig, postKey(postID), config.pack())
	b.extendPost(postID)

	if signal {
		b.emit(Event{
			Kind:   EventFractionalize,
			PostID: postID,
			From:   builder,
			Amount: int64(config.BuildCount),
		})
	}
	return config, signal, nil
}

// TransferShard - move one shard of a post, from must own it
func (b *Batch) TransferShard(auth authority.Authoriser, from *account.Account, to *account.Account, postID string, local uint64) error {
	if err := requireAuth(auth, from); nil != err {
		return err
	}
	if err := requireAccounts(to); nil != err {
		return err
	}
	if err := b.moveShard(from, to, postID, local); nil != err {
		return err
	}

	b.extendPost(postID)
	b.extendAccounts(from, to)

	b.emit(Event{
		Kind:   EventTransferShard,
		PostID: postID,
		From:   from,
		To:     to,
		Amount: 1,
		Index:  local,
	})
	return nil
}

// Approve - overwrite the allowance of spender over from's balance
func (b *Batch) Approve(auth authority.Authoriser, from *account.Account, spender *account.Account, amount int64, expirationLedger uint64) error {
	if err := requireAuth(auth, from); nil != err {
		return err
	}
	if err := requireAccounts(spender); nil != err {
		return err
	}
	if err := b.writeAllowance(from, spender, amount, expirationLedger); nil != err {
		return err
	}

	b.extendAccounts(from)

	b.emit(Event{
		Kind:       EventApprove,
		From:       from,
		Spender:    spender,
		Amount:     amount,
		Expiration: expirationLedger,
	})
	return nil
}

// Transfer - move the shard with a global index and one balance unit
func (b *Batch) Transfer(auth authority.Authoriser, from *account.Account, to *account.Account, index uint64) error {
	if err := requireAuth(auth, from); nil != err {
		return err
	}
	if err := requireAccounts(to); nil != err {
		return err
	}

	postID, local, err := resolveShard(b.trx, index)
	if nil != err {
		return err
	}
	if err := b.moveShard(from, to, postID, local); nil != err {
		return err
	}
	if err := b.moveBalance(from, to, 1); nil != err {
		return err
	}

	b.extendPost(postID)
	b.extendAccounts(from, to)

	b.emit(Event{
		Kind:   EventTransfer,
		PostID: postID,
		From:   from,
		To:     to,
		Amount: 1,
		Index:  index,
	})
	return nil
}

// TransferFrom - spender moves amount of from's balance to another account
func (b *Batch) TransferFrom(auth authority.Authoriser, spender *account.Account, from *account.Account, to *account.Account, amount int64) error {
	if err := requireAuth(auth, spender); nil != err {
		return err
	}
	if err := requireAccounts(from, to); nil != err {
		return err
	}
	if amount < 0 {
		return fault.NegativeAmount
	}
	if err := b.spendAllowance(from, spender, amount); nil != err {
		return err
	}
	if err := b.moveBalance(from, to, uint64(amount)); nil != err {
		return err
	}

	b.extendAccounts(from, to)

	b.emit(Event{
		Kind:    EventTransfer,
		From:    from,
		To:      to,
		Spender: spender,
		Amount:  amount,
	})
	return nil
}

// Burn - destroy amount of from's balance
func (b *Batch) Burn(auth authority.Authoriser, from *account.Account, amount int64) error {
	if err := requireAuth(auth, from); nil != err {
		return err
	}
	if amount < 0 {
		return fault.NegativeAmount
	}
	if err := b.spendBalance(from, uint64(amount)); nil != err {
		return err
	}

	b.extendAccounts(from)

	b.emit(Event{
		Kind:   EventBurn,
		From:   from,
		Amount: amount,
	})
	return nil
}

// BurnFrom - spender destroys amount of from's balance
func (b *Batch) BurnFrom(auth authority.Authoriser, spender *account.Account, from *account.Account, amount int64) error {
	if err := requireAuth(auth, spender); nil != err {
		return err
	}
	if err := requireAccounts(from); nil != err {
		return err
	}
	if amount < 0 {
		return fault.NegativeAmount
	}
	if err := b.spendAllowance(from, spender, amount); nil != err {
		return err
	}
	if err := b.spendBalance(from, uint64(amount)); nil != err {
		return err
	}

	b.extendAccounts(from)

	b.emit(Event{
		Kind:    EventBurn,
		From:    from,
		Spender: spender,
		Amount:  amount,
	})
	return nil
}

// ClaimShards - move local shards [start, start+count) and count balance
// units from creator to builder
//
// the caller is responsible for authorising the claim
func (b *Batch) ClaimShards(creator *account.Account, builder *account.Account, postID string, start uint64, count uint64) error {
	if err := requireAccounts(creator, builder); nil != err {
		return err
	}
	for local := start; local < start+count; local += 1 {
		if err := b.moveShard(creator, builder, postID, local); nil != err {
			return err
		}
	}
	if err := b.moveBalance(creator, builder, count); nil != err {
		return err
	}

	b.extendPost(postID)
	b.extendAccounts(creator, builder)

	b.emit(Event{
		Kind:   EventTransferShard,
		PostID: postID,
		From:   creator,
		To:     builder,
		Amount: int64(count),
		Index:  start,
	})
	return nil
}

// Config - engagement state of a post inside the batch
func (b *Batch) Config(postID string) (*PostConfig, error) {
	return readPostConfig(b.trx, postID)
}

// ShardTotal - number of shards of a post inside the batch
func (b *Batch) ShardTotal(postID string) (uint64, error) {
	count, err := readShardCount(b.trx, postID)
	if nil != err {
		return 0, err
	}
	return count.Total, nil
}
