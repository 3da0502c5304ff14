// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shards - RPC access to the shard contract
package shards

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/authority"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/rpc/ratelimit"
	"github.com/bewd-social/shardd/shards"
)

const (
	rateLimitShards = 200
	rateBurstShards = 100
)

// Shards - type for RPC
type Shards struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Contract shards.Shards
	Verifier *authority.Verifier
	Test     bool
}

// New - create the shards RPC handler
func New(log *logger.L, contract shards.Shards, verifier *authority.Verifier, test bool) *Shards {
	return &Shards{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitShards, rateBurstShards),
		Contract: contract,
		Verifier: verifier,
		Test:     test,
	}
}

// UpdateReply - result of a state changing call
type UpdateReply struct {
	OK bool `json:"ok"`
}

// ensure every account belongs to this node's network
func (s *Shards) checkNetwork(accounts ...*account.Account) error {
	for _, a := range accounts {
		if nil == a {
			return fault.MissingParameters
		}
		if a.IsTesting() != s.Test {
			return fault.WrongNetworkForPublicKey
		}
	}
	return nil
}

// Create a post
// -------------

// InitialisePostArguments - issue all shards of a new post to the admin
type InitialisePostArguments struct {
	Admin       *account.Account `json:"admin"`
	PostID      string           `json:"postId"`
	Decimal     uint32           `json:"decimal"`
	Name        string           `json:"name"`
	Symbol      string           `json:"symbol"`
	Threshold   uint64           `json:"threshold,string"`
	TotalShards uint64           `json:"totalShards,string"`
	IsRWA       bool             `json:"isRwa"`
	authority.Request
}

// Pack - the message signed by the admin
func (arguments *InitialisePostArguments) Pack() []byte {
	return authority.Pack("Shards.InitialisePost", arguments.Nonce,
		authority.PackAccount(arguments.Admin),
		[]byte(arguments.PostID),
		authority.PackUint(uint64(arguments.Decimal)),
		[]byte(arguments.Name),
		[]byte(arguments.Symbol),
		authority.PackUint(arguments.Threshold),
		authority.PackUint(arguments.TotalShards),
		authority.PackBool(arguments.IsRWA),
	)
}

// InitialisePostReply - global index of local shard zero
type InitialisePostReply struct {
	BaseIndex uint64 `json:"baseIndex,string"`
}

// InitialisePost - create a post's shards
func (s *Shards) InitialisePost(arguments *InitialisePostArguments, reply *InitialisePostReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	log := s.Log

	log.Infof("Shards.InitialisePost: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.Admin); nil != err {
		return err
	}

	auth, err := arguments.Authorise(s.Verifier, arguments.Admin, arguments.Pack())
	if nil != err {
		return err
	}

	metadata := shards.Metadata{
		Decimal: arguments.Decimal,
		Name:    arguments.Name,
		Symbol:  arguments.Symbol,
	}
	base, err := s.Contract.InitializePost(auth, arguments.Admin, arguments.PostID, metadata, arguments.Threshold, arguments.TotalShards, arguments.IsRWA)
	if nil != err {
		return err
	}

	log.Debugf("post: %q  base index: %d", arguments.PostID, base)

	reply.BaseIndex = base
	return nil
}

// Record a build
// --------------

// BuildArguments - one unit of engagement on a post
type BuildArguments struct {
	Builder *account.Account `json:"builder"`
	PostID  string           `json:"postId"`
	authority.Request
}

// Pack - the message signed by the builder
func (arguments *BuildArguments) Pack() []byte {
	return authority.Pack("Shards.Build", arguments.Nonce,
		authority.PackAccount(arguments.Builder),
		[]byte(arguments.PostID),
	)
}

// BuildReply - engagement state after the build
type BuildReply struct {
	BuildCount     uint64       `json:"buildCount,string"`
	Threshold      uint64       `json:"threshold,string"`
	State          shards.State `json:"state"`
	Fractionalised bool         `json:"fractionalised"`
}

// Build - record a build and report whether it crossed the threshold
func (s *Shards) Build(arguments *BuildArguments, reply *BuildReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	log := s.Log

	log.Infof("Shards.Build: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.Builder); nil != err {
		return err
	}

	auth, err := arguments.Authorise(s.Verifier, arguments.Builder, arguments.Pack())
	if nil != err {
		return err
	}

	config, signalled, err := s.Contract.BuildPost(auth, arguments.PostID, arguments.Builder)
	if nil != err {
		return err
	}

	reply.BuildCount = config.BuildCount
	reply.Threshold = config.Threshold
	reply.State = config.State()
	reply.Fractionalised = signalled
	return nil
}

// Move one shard of a post
// ------------------------

// TransferShardArguments - move a shard by its local index
type TransferShardArguments struct {
	From   *account.Account `json:"from"`
	To     *account.Account `json:"to"`
	PostID string           `json:"postId"`
	Index  uint64           `json:"index,string"`
	authority.Request
}

// Pack - the message signed by the current owner
func (arguments *TransferShardArguments) Pack() []byte {
	return authority.Pack("Shards.TransferShard", arguments.Nonce,
		authority.PackAccount(arguments.From),
		authority.PackAccount(arguments.To),
		[]byte(arguments.PostID),
		authority.PackUint(arguments.Index),
	)
}

// TransferShard - move one shard of a post to another account
func (s *Shards) TransferShard(arguments *TransferShardArguments, reply *UpdateReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Shards.TransferShard: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.From, arguments.To); nil != err {
		return err
	}

	auth, err := arguments.Authorise(s.Verifier, arguments.From, arguments.Pack())
	if nil != err {
		return err
	}

	if err := s.Contract.TransferShard(auth, arguments.From, arguments.To, arguments.PostID, arguments.Index); nil != err {
		return err
	}
	reply.OK = true
	return nil
}

// Allowances
// ----------

// ApproveArguments - grant a spender an allowance
type ApproveArguments struct {
	From             *account.Account `json:"from"`
	Spender          *account.Account `json:"spender"`
	Amount           int64            `json:"amount,string"`
	ExpirationLedger uint64           `json:"expirationLedger,string"`
	authority.Request
}

// Pack - the message signed by the grantor
func (arguments *ApproveArguments) Pack() []byte {
	return authority.Pack("Shards.Approve", arguments.Nonce,
		authority.PackAccount(arguments.From),
		authority.PackAccount(arguments.Spender),
		authority.PackInt(arguments.Amount),
		authority.PackUint(arguments.ExpirationLedger),
	)
}

// Approve - set the allowance of spender over from's balance
func (s *Shards) Approve(arguments *ApproveArguments, reply *UpdateReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Shards.Approve: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.From, arguments.Spender); nil != err {
		return err
	}

	auth, err := arguments.Authorise(s.Verifier, arguments.From, arguments.Pack())
	if nil != err {
		return err
	}

	if err := s.Contract.Approve(auth, arguments.From, arguments.Spender, arguments.Amount, arguments.ExpirationLedger); nil != err {
		return err
	}
	reply.OK = true
	return nil
}

// Fungible transfers
// ------------------

// TransferArguments - move a shard by its global index
type TransferArguments struct {
	From  *account.Account `json:"from"`
	To    *account.Account `json:"to"`
	Index uint64           `json:"index,string"`
	authority.Request
}

// Pack - the message signed by the current owner
func (arguments *TransferArguments) Pack() []byte {
	return authority.Pack("Shards.Transfer", arguments.Nonce,
		authority.PackAccount(arguments.From),
		authority.PackAccount(arguments.To),
		authority.PackUint(arguments.Index),
	)
}

// Transfer - move one shard and one balance unit
func (s *Shards) Transfer(arguments *TransferArguments, reply *UpdateReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Shards.Transfer: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.From, arguments.To); nil != err {
		return err
	}

	auth, err := arguments.Authorise(s.Verifier, arguments.From, arguments.Pack())
	if nil != err {
		return err
	}

	if err := s.Contract.Transfer(auth, arguments.From, arguments.To, arguments.Index); nil != err {
		return err
	}
	reply.OK = true
	return nil
}

// TransferFromArguments - spend an allowance
type TransferFromArguments struct {
	Spender *account.Account `json:"spender"`
	From    *account.Account `json:"from"`
	To      *account.Account `json:"to"`
	Amount  int64            `json:"amount,string"`
	authority.Request
}

// Pack - the message signed by the spender
func (arguments *TransferFromArguments) Pack() []byte {
	return authority.Pack("Shards.TransferFrom", arguments.Nonce,
		authority.PackAccount(arguments.Spender),
		authority.PackAccount(arguments.From),
		authority.PackAccount(arguments.To),
		authority.PackInt(arguments.Amount),
	)
}

// TransferFrom - move balance on behalf of from
func (s *Shards) TransferFrom(arguments *TransferFromArguments, reply *UpdateReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Shards.TransferFrom: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.Spender, arguments.From, arguments.To); nil != err {
		return err
	}

	auth, err := arguments.Authorise(s.Verifier, arguments.Spender, arguments.Pack())
	if nil != err {
		return err
	}

	if err := s.Contract.TransferFrom(auth, arguments.Spender, arguments.From, arguments.To, arguments.Amount); nil != err {
		return err
	}
	reply.OK = true
	return nil
}

// Burning
// -------

// BurnArguments - destroy some of the signer's balance
type BurnArguments struct {
	From   *account.Account `json:"from"`
	Amount int64            `json:"amount,string"`
	authority.Request
}

// Pack - the message signed by the holder
func (arguments *BurnArguments) Pack() []byte {
	return authority.Pack("Shards.Burn", arguments.Nonce,
		authority.PackAccount(arguments.From),
		authority.PackInt(arguments.Amount),
	)
}

// Burn - reduce a balance
func (s *Shards) Burn(arguments *BurnArguments, reply *UpdateReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Shards.Burn: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.From); nil != err {
		return err
	}

	auth, err := arguments.Authorise(s.Verifier, arguments.From, arguments.Pack())
	if nil != err {
		return err
	}

	if err := s.Contract.Burn(auth, arguments.From, arguments.Amount); nil != err {
		return err
	}
	reply.OK = true
	return nil
}

// BurnFromArguments - destroy balance through an allowance
type BurnFromArguments struct {
	Spender *account.Account `json:"spender"`
	From    *account.Account `json:"from"`
	Amount  int64            `json:"amount,string"`
	authority.Request
}

// Pack - the message signed by the spender
func (arguments *BurnFromArguments) Pack() []byte {
	return authority.Pack("Shards.BurnFrom", arguments.Nonce,
		authority.PackAccount(arguments.Spender),
		authority.PackAccount(arguments.From),
		authority.PackInt(arguments.Amount),
	)
}

// BurnFrom - reduce from's balance on its behalf
func (s *Shards) BurnFrom(arguments *BurnFromArguments, reply *UpdateReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Shards.BurnFrom: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.Spender, arguments.From); nil != err {
		return err
	}

	auth, err := arguments.Authorise(s.Verifier, arguments.Spender, arguments.Pack())
	if nil != err {
		return err
	}

	if err := s.Contract.BurnFrom(auth, arguments.Spender, arguments.From, arguments.Amount); nil != err {
		return err
	}
	reply.OK = true
	return nil
}
