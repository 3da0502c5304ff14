// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shards

import (
	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/ledger"
	"github.com/bewd-social/shardd/rpc/ratelimit"
	"github.com/bewd-social/shardd/shards"
)

// Balance
// -------

// BalanceArguments - account to query
type BalanceArguments struct {
	Owner *account.Account `json:"owner"`
}

// BalanceReply - aggregate balance
type BalanceReply struct {
	Balance uint64 `json:"balance,string"`
}

// Balance - aggregate balance of an account
func (s *Shards) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Shards.Balance: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.Owner); nil != err {
		return err
	}

	reply.Balance = s.Contract.Balance(arguments.Owner)
	return nil
}

// Allowance
// ---------

// AllowanceArguments - grantor and spender
type AllowanceArguments struct {
	From    *account.Account `json:"from"`
	Spender *account.Account `json:"spender"`
}

// AllowanceReply - remaining allowance
type AllowanceReply struct {
	Amount           int64  `json:"amount,string"`
	ExpirationLedger uint64 `json:"expirationLedger,string"`
}

// Allowance - remaining unexpired allowance
func (s *Shards) Allowance(arguments *AllowanceArguments, reply *AllowanceReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Shards.Allowance: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.From, arguments.Spender); nil != err {
		return err
	}

	allowance, err := s.Contract.Allowance(arguments.From, arguments.Spender)
	if nil != err {
		return err
	}
	reply.Amount = allowance.Amount
	reply.ExpirationLedger = allowance.ExpirationLedger
	return nil
}

// Post queries
// ------------

// PostArguments - a post identifier
type PostArguments struct {
	PostID string `json:"postId"`
}

// MetadataReply - display metadata of a post
type MetadataReply struct {
	Decimals uint32 `json:"decimals"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
}

// Metadata - decimals, name and symbol of a post
func (s *Shards) Metadata(arguments *PostArguments, reply *MetadataReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Shards.Metadata: %+v", arguments)

	if nil == arguments || "" == arguments.PostID {
		return fault.InvalidItem
	}

	metadata, err := s.Contract.Metadata(arguments.PostID)
	if nil != err {
		return err
	}
	reply.Decimals = metadata.Decimal
	reply.Name = metadata.Name
	reply.Symbol = metadata.Symbol
	return nil
}

// PostReply - shard and engagement state
type PostReply struct {
	Post *shards.Post `json:"post"`
}

// Post - configuration, counts and engagement state of a post
func (s *Shards) Post(arguments *PostArguments, reply *PostReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Shards.Post: %+v", arguments)

	if nil == arguments || "" == arguments.PostID {
		return fault.InvalidItem
	}

	post, err := s.Contract.Post(arguments.PostID)
	if nil != err {
		return err
	}
	reply.Post = post
	return nil
}

// ShardArguments - a global shard index
type ShardArguments struct {
	Index uint64 `json:"index,string"`
}

// PostForShardReply - location of a global shard
type PostForShardReply struct {
	PostID string           `json:"postId"`
	Index  uint64           `json:"index,string"`
	Owner  *account.Account `json:"owner"`
}

// PostForShard - resolve a global shard index to its post, local index and owner
func (s *Shards) PostForShard(arguments *ShardArguments, reply *PostForShardReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Shards.PostForShard: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}

	postID, local, err := s.Contract.PostForShard(arguments.Index)
	if nil != err {
		return err
	}
	owner, err := s.Contract.ShardOwner(postID, local)
	if nil != err {
		return err
	}

	reply.PostID = postID
	reply.Index = local
	reply.Owner = owner
	return nil
}

// OwnersArguments - a page of a post's owner table
type OwnersArguments struct {
	PostID string `json:"postId"`
	Start  uint64 `json:"start,string"`
	Count  int    `json:"count"`
}

// OwnersReply - owners in local index order
type OwnersReply struct {
	Owners    []shards.Owner `json:"owners"`
	NextStart uint64         `json:"nextStart,string"`
}

// Owners - list owners from a local index
func (s *Shards) Owners(arguments *OwnersArguments, reply *OwnersReply) error {

	if nil == arguments {
		return fault.InvalidItem
	}

	if err := ratelimit.LimitN(s.Limiter, arguments.Count, shards.MaximumOwnersCount); nil != err {
		return err
	}

	s.Log.Infof("Shards.Owners: %+v", arguments)

	if "" == arguments.PostID {
		return fault.InvalidItem
	}

	owners, err := s.Contract.Owners(arguments.PostID, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Owners = owners
	reply.NextStart = arguments.Start
	if n := len(owners); n > 0 {
		reply.NextStart = owners[n-1].Index + 1
	}
	return nil
}

// HoldingArguments - a post and an account
type HoldingArguments struct {
	PostID string           `json:"postId"`
	Owner  *account.Account `json:"owner"`
}

// HoldingReply - shards of the post held by the account
type HoldingReply struct {
	Count uint64 `json:"count,string"`
}

// Holding - number of a post's shards held by an account
func (s *Shards) Holding(arguments *HoldingArguments, reply *HoldingReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Shards.Holding: %+v", arguments)

	if nil == arguments || "" == arguments.PostID {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.Owner); nil != err {
		return err
	}

	reply.Count = s.Contract.Holding(arguments.PostID, arguments.Owner)
	return nil
}

// Lifetime
// --------

// LiveUntilArguments - record family and key
//
// Key is a post id for "post", an account for "account"
// and is ignored for "instance"
type LiveUntilArguments struct {
	Kind string `json:"kind"`
	Key  string `json:"key"`
}

// LiveUntilReply - last ledger the record is live
type LiveUntilReply struct {
	LiveUntil uint64 `json:"liveUntil,string"`
}

// LiveUntil - lifetime of a post, account or the instance
func (s *Shards) LiveUntil(arguments *LiveUntilArguments, reply *LiveUntilReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Shards.LiveUntil: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}

	kind, err := ledger.ParseKind(arguments.Kind)
	if nil != err {
		return err
	}

	key := []byte(arguments.Key)
	if ledger.Account == kind {
		a, err := account.AccountFromBase58(arguments.Key)
		if nil != err {
			return err
		}
		if err := s.checkNetwork(a); nil != err {
			return err
		}
		key = a.Bytes()
	}

	liveUntil, err := s.Contract.LiveUntil(kind, key)
	if nil != err {
		return err
	}
	reply.LiveUntil = liveUntil
	return nil
}
