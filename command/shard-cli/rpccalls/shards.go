// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bewd-social/shardd/account"
	rpcshards "github.com/bewd-social/shardd/rpc/shards"
)

// InitialisePostData - the parameters for a new post, the identity is the admin
type InitialisePostData struct {
	PostID      string
	Decimal     uint32
	Name        string
	Symbol      string
	Threshold   uint64
	TotalShards uint64
	IsRWA       bool
}

// InitialisePost - issue all shards of a post to the identity
func (c *Client) InitialisePost(data *InitialisePostData) (*rpcshards.InitialisePostReply, error) {
	admin, err := c.signer()
	if nil != err {
		return nil, err
	}

	args := rpcshards.InitialisePostArguments{
		Admin:       admin,
		PostID:      data.PostID,
		Decimal:     data.Decimal,
		Name:        data.Name,
		Symbol:      data.Symbol,
		Threshold:   data.Threshold,
		TotalShards: data.TotalShards,
		IsRWA:       data.IsRWA,
	}
	args.Nonce = nonce()
	args.Sign(c.key, args.Pack())

	reply := &rpcshards.InitialisePostReply{}
	if err := c.call("Shards.InitialisePost", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Build - record a build of a post by the identity
func (c *Client) Build(postID string) (*rpcshards.BuildReply, error) {
	builder, err := c.signer()
	if nil != err {
		return nil, err
	}

	args := rpcshards.BuildArguments{
		Builder: builder,
		PostID:  postID,
	}
	args.Nonce = nonce()
	args.Sign(c.key, args.Pack())

	reply := &rpcshards.BuildReply{}
	if err := c.call("Shards.Build", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// TransferShard - move one shard of a post from the identity
func (c *Client) TransferShard(to *account.Account, postID string, index uint64) (*rpcshards.UpdateReply, error) {
	from, err := c.signer()
	if nil != err {
		return nil, err
	}

	args := rpcshards.TransferShardArguments{
		From:   from,
		To:     to,
		PostID: postID,
		Index:  index,
	}
	args.Nonce = nonce()
	args.Sign(c.key, args.Pack())

	reply := &rpcshards.UpdateReply{}
	if err := c.call("Shards.TransferShard", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Approve - set the allowance of a spender over the identity's balance
func (c *Client) Approve(spender *account.Account, amount int64, expirationLedger uint64) (*rpcshards.UpdateReply, error) {
	from, err := c.signer()
	if nil != err {
		return nil, err
	}

	args := rpcshards.ApproveArguments{
		From:             from,
		Spender:          spender,
		Amount:           amount,
		ExpirationLedger: expirationLedger,
	}
	args.Nonce = nonce()
	args.Sign(c.key, args.Pack())

	reply := &rpcshards.UpdateReply{}
	if err := c.call("Shards.Approve", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Transfer - move a shard by global index from the identity
func (c *Client) Transfer(to *account.Account, index uint64) (*rpcshards.UpdateReply, error) {
	from, err := c.signer()
	if nil != err {
		return nil, err
	}

	args := rpcshards.TransferArguments{
		From:  from,
		To:    to,
		Index: index,
	}
	args.Nonce = nonce()
	args.Sign(c.key, args.Pack())

	reply := &rpcshards.UpdateReply{}
	if err := c.call("Shards.Transfer", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// TransferFrom - the identity spends an allowance of from
func (c *Client) TransferFrom(from *account.Account, to *account.Account, amount int64) (*rpcshards.UpdateReply, error) {
	spender, err := c.signer()
	if nil != err {
		return nil, err
	}

	args := rpcshards.TransferFromArguments{
		Spender: spender,
		From:    from,
		To:      to,
		Amount:  amount,
	}
	args.Nonce = nonce()
	args.Sign(c.key, args.Pack())

	reply := &rpcshards.UpdateReply{}
	if err := c.call("Shards.TransferFrom", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Burn - destroy part of the identity's balance
func (c *Client) Burn(amount int64) (*rpcshards.UpdateReply, error) {
	from, err := c.signer()
	if nil != err {
		return nil, err
	}

	args := rpcshards.BurnArguments{
		From:   from,
		Amount: amount,
	}
	args.Nonce = nonce()
	args.Sign(c.key, args.Pack())

	reply := &rpcshards.UpdateReply{}
	if err := c.call("Shards.Burn", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// BurnFrom - the identity burns from another account using an allowance
func (c *Client) BurnFrom(from *account.Account, amount int64) (*rpcshards.UpdateReply, error) {
	spender, err := c.signer()
	if nil != err {
		return nil, err
	}

	args := rpcshards.BurnFromArguments{
		Spender: spender,
		From:    from,
		Amount:  amount,
	}
	args.Nonce = nonce()
	args.Sign(c.key, args.Pack())

	reply := &rpcshards.UpdateReply{}
	if err := c.call("Shards.BurnFrom", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Balance - aggregate balance of an account
func (c *Client) Balance(owner *account.Account) (*rpcshards.BalanceReply, error) {
	args := rpcshards.BalanceArguments{
		Owner: owner,
	}
	reply := &rpcshards.BalanceReply{}
	if err := c.call("Shards.Balance", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Allowance - remaining allowance of spender over from
func (c *Client) Allowance(from *account.Account, spender *account.Account) (*rpcshards.AllowanceReply, error) {
	args := rpcshards.AllowanceArguments{
		From:    from,
		Spender: spender,
	}
	reply := &rpcshards.AllowanceReply{}
	if err := c.call("Shards.Allowance", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Metadata - decimals, name and symbol of a post
func (c *Client) Metadata(postID string) (*rpcshards.MetadataReply, error) {
	args := rpcshards.PostArguments{
		PostID: postID,
	}
	reply := &rpcshards.MetadataReply{}
	if err := c.call("Shards.Metadata", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Post - configuration and engagement state of a post
func (c *Client) Post(postID string) (*rpcshards.PostReply, error) {
	args := rpcshards.PostArguments{
		PostID: postID,
	}
	reply := &rpcshards.PostReply{}
	if err := c.call("Shards.Post", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// PostForShard - resolve a global shard index
func (c *Client) PostForShard(index uint64) (*rpcshards.PostForShardReply, error) {
	args := rpcshards.ShardArguments{
		Index: index,
	}
	reply := &rpcshards.PostForShardReply{}
	if err := c.call("Shards.PostForShard", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Owners - page of a post's owner table
func (c *Client) Owners(postID string, start uint64, count int) (*rpcshards.OwnersReply, error) {
	args := rpcshards.OwnersArguments{
		PostID: postID,
		Start:  start,
		Count:  count,
	}
	reply := &rpcshards.OwnersReply{}
	if err := c.call("Shards.Owners", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Holding - shards of a post held by an account
func (c *Client) Holding(postID string, owner *account.Account) (*rpcshards.HoldingReply, error) {
	args := rpcshards.HoldingArguments{
		PostID: postID,
		Owner:  owner,
	}
	reply := &rpcshards.HoldingReply{}
	if err := c.call("Shards.Holding", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// LiveUntil - lifetime of a post, account or the instance
func (c *Client) LiveUntil(kind string, key string) (*rpcshards.LiveUntilReply, error) {
	args := rpcshards.LiveUntilArguments{
		Kind: kind,
		Key:  key,
	}
	reply := &rpcshards.LiveUntilReply{}
	if err := c.call("Shards.LiveUntil", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
