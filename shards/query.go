// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shards

import (
	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/ledger"
	"github.com/bewd-social/shardd/storage"
)

// MaximumOwnersCount - largest page of owners
const MaximumOwnersCount = 1000

// Owner - one entry of a post's owner table
type Owner struct {
	Index   uint64           `json:"index"`
	Account *account.Account `json:"account"`
}

// Post - shard and engagement state of a post
type Post struct {
	PostID string `json:"postId"`
	PostConfig
	State       State  `json:"state"`
	TotalShards uint64 `json:"totalShards"`
	BaseIndex   uint64 `json:"baseIndex"`
}

// Balance - aggregate balance of an account
func (c *Contract) Balance(a *account.Account) uint64 {
	if nil == a {
		return 0
	}
	return readBalance(committed{}, a)
}

// Allowance - remaining allowance, zero amount if absent or expired
func (c *Contract) Allowance(from *account.Account, spender *account.Account) (*Allowance, error) {
	if err := requireAccounts(from, spender); nil != err {
		return nil, err
	}
	return readAllowance(committed{}, from, spender, ledger.CurrentSequence())
}

// Metadata - display metadata of a post
func (c *Contract) Metadata(postID string) (*Metadata, error) {
	return readMetadata(committed{}, postID)
}

// Decimals - display precision of a post's shards
func (c *Contract) Decimals(postID string) (uint32, error) {
	m, err := c.Metadata(postID)
	if nil != err {
		return 0, err
	}
	return m.Decimal, nil
}

// Name - display name of a post's shards
func (c *Contract) Name(postID string) (string, error) {
	m, err := c.Metadata(postID)
	if nil != err {
		return "", err
	}
	return m.Name, nil
}

// Symbol - display symbol of a post's shards
func (c *Contract) Symbol(postID string) (string, error) {
	m, err := c.Metadata(postID)
	if nil != err {
		return "", err
	}
	return m.Symbol, nil
}

// PostForShard - post and local index of a global shard index
func (c *Contract) PostForShard(index uint64) (string, uint64, error) {
	return resolveShard(committed{}, index)
}

// ShardOwner - current owner of one shard
func (c *Contract) ShardOwner(postID string, local uint64) (*account.Account, error) {
	count, err := readShardCount(committed{}, postID)
	if nil != err {
		return nil, err
	}
	if local >= count.Total {
		return nil, fault.IndexOutOfRange
	}
	owner := readShardOwner(committed{}, postID, local)
	if nil == owner {
		return nil, fault.MissingRecord
	}
	return owner, nil
}

// Owners - page of a post's owner table starting at local index start
func (c *Contract) Owners(postID string, start uint64, count int) ([]Owner, error) {
	if count <= 0 || count > MaximumOwnersCount {
		return nil, fault.InvalidCount
	}
	if _, err := readShardCount(committed{}, postID); nil != err {
		return nil, err
	}

	prefix := postKey(postID)
	cursor := storage.Pool.ShardOwners.NewFetchCursor().Within(prefix).Seek(ownerKey(postID, start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	owners := make([]Owner, 0, len(elements))
	for _, e := range elements {
		if len(e.Key) != len(prefix)+8 {
			return nil, fault.TruncatedRecord
		}
		a, err := account.AccountFromBytes(e.Value)
		if nil != err {
			return nil, err
		}
		owners = append(owners, Owner{
			Index:   storage.DecodeN(e.Key[len(prefix):]),
			Account: a,
		})
	}
	return owners, nil
}

// Holding - number of a post's shards owned by an account
func (c *Contract) Holding(postID string, a *account.Account) uint64 {
	if nil == a {
		return 0
	}
	return readHolding(committed{}, postID, a)
}

// Post - shard and engagement state of a post
func (c *Contract) Post(postID string) (*Post, error) {
	config, err := readPostConfig(committed{}, postID)
	if nil != err {
		return nil, err
	}
	count, err := readShardCount(committed{}, postID)
	if nil != err {
		return nil, err
	}
	return &Post{
		PostID:      postID,
		PostConfig:  *config,
		State:       config.State(),
		TotalShards: count.Total,
		BaseIndex:   count.Base,
	}, nil
}

// LiveUntil - last ledger at which a post or account record is live
//
// the instance has a single record so key is ignored
func (c *Contract) LiveUntil(kind ledger.Kind, key []byte) (uint64, error) {
	n, found := uint64(0), false
	if ledger.Instance == kind {
		n, found = ledger.InstanceLiveUntil()
	} else {
		n, found = ledger.LiveUntil(kind, key)
	}
	if !found {
		return 0, fault.MissingRecord
	}
	return n, nil
}
