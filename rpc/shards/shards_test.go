// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shards_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/authority"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/ledger"
	"github.com/bewd-social/shardd/rpc/fixtures"
	"github.com/bewd-social/shardd/rpc/mocks"
	rpcshards "github.com/bewd-social/shardd/rpc/shards"
	"github.com/bewd-social/shardd/shards"
)

func newHandler(t *testing.T) (*rpcshards.Shards, *mocks.MockShards, *gomock.Controller) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockShards(ctl)
	s := rpcshards.New(
		logger.New(fixtures.LogCategory),
		m,
		authority.NewVerifier(true, time.Minute),
		true,
	)
	return s, m, ctl
}

func TestShardsInitialisePost(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s, m, ctl := newHandler(t)
	defer ctl.Finish()

	admin := fixtures.AdminKey.Account()
	arg := rpcshards.InitialisePostArguments{
		Admin:       admin,
		PostID:      "post-1",
		Decimal:     0,
		Name:        "post-1",
		Symbol:      "SHRD",
		Threshold:   3,
		TotalShards: 5,
		IsRWA:       true,
	}
	arg.Nonce = fixtures.Nonce()
	arg.Sign(fixtures.AdminKey, arg.Pack())

	metadata := shards.Metadata{Decimal: 0, Name: "post-1", Symbol: "SHRD"}
	m.EXPECT().InitializePost(gomock.Any(), admin, "post-1", metadata, uint64(3), uint64(5), true).Return(uint64(10), nil).Times(1)

	var reply rpcshards.InitialisePostReply
	err := s.InitialisePost(&arg, &reply)
	assert.Nil(t, err, "wrong InitialisePost")
	assert.Equal(t, uint64(10), reply.BaseIndex, "wrong base index")

	// same signed request again
	err = s.InitialisePost(&arg, &reply)
	assert.Equal(t, fault.ReplayedRequest, err, "wrong replay error")

	// correctly signed but with a nonce far in the past
	arg.Nonce = 1
	arg.Sign(fixtures.AdminKey, arg.Pack())
	err = s.InitialisePost(&arg, &reply)
	assert.Equal(t, fault.StaleRequest, err, "wrong stale nonce error")
}

func TestShardsInitialisePostBadSignature(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s, _, ctl := newHandler(t)
	defer ctl.Finish()

	arg := rpcshards.InitialisePostArguments{
		Admin:       fixtures.AdminKey.Account(),
		PostID:      "post-1",
		TotalShards: 5,
	}
	arg.Nonce = fixtures.Nonce()

	// signed by the wrong key
	arg.Sign(fixtures.BuilderKey, arg.Pack())

	var reply rpcshards.InitialisePostReply
	err := s.InitialisePost(&arg, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "wrong signer")

	// signature over different content
	arg.Nonce = fixtures.Nonce()
	arg.Sign(fixtures.AdminKey, arg.Pack())
	arg.TotalShards = 500
	err = s.InitialisePost(&arg, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "altered request")

	arg.Signature = nil
	err = s.InitialisePost(&arg, &reply)
	assert.Equal(t, fault.MissingParameters, err, "unsigned request")
}

func TestShardsWrongNetwork(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s, _, ctl := newHandler(t)
	defer ctl.Finish()

	arg := rpcshards.BurnArguments{
		From:   fixtures.LiveKey.Account(),
		Amount: 1,
	}
	arg.Nonce = fixtures.Nonce()
	arg.Sign(fixtures.LiveKey, arg.Pack())

	var reply rpcshards.UpdateReply
	err := s.Burn(&arg, &reply)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "live account on test node")

	err = s.Burn(&rpcshards.BurnArguments{Amount: 1}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "missing account")
}

func TestShardsBuild(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s, m, ctl := newHandler(t)
	defer ctl.Finish()

	builder := fixtures.BuilderKey.Account()
	arg := rpcshards.BuildArguments{
		Builder: builder,
		PostID:  "post-1",
	}
	arg.Nonce = fixtures.Nonce()
	arg.Sign(fixtures.BuilderKey, arg.Pack())

	config := shards.PostConfig{Threshold: 3, BuildCount: 3, Signalled: true}
	m.EXPECT().BuildPost(gomock.Any(), "post-1", builder).Return(&config, true, nil).Times(1)

	var reply rpcshards.BuildReply
	err := s.Build(&arg, &reply)
	assert.Nil(t, err, "wrong Build")
	assert.Equal(t, uint64(3), reply.BuildCount, "wrong build count")
	assert.Equal(t, shards.ThresholdReached, reply.State, "wrong state")
	assert.True(t, reply.Fractionalised, "crossing not reported")
}

func TestShardsTransfers(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s, m, ctl := newHandler(t)
	defer ctl.Finish()

	admin := fixtures.AdminKey.Account()
	builder := fixtures.BuilderKey.Account()
	receiver := fixtures.ReceiverKey.Account()

	ts := rpcshards.TransferShardArguments{From: admin, To: builder, PostID: "post-1", Index: 2}
	ts.Nonce = fixtures.Nonce()
	ts.Sign(fixtures.AdminKey, ts.Pack())
	m.EXPECT().TransferShard(gomock.Any(), admin, builder, "post-1", uint64(2)).Return(nil).Times(1)

	tr := rpcshards.TransferArguments{From: admin, To: builder, Index: 7}
	tr.Nonce = fixtures.Nonce()
	tr.Sign(fixtures.AdminKey, tr.Pack())
	m.EXPECT().Transfer(gomock.Any(), admin, builder, uint64(7)).Return(fault.NotShardOwner).Times(1)

	ap := rpcshards.ApproveArguments{From: admin, Spender: builder, Amount: 100, ExpirationLedger: 50}
	ap.Nonce = fixtures.Nonce()
	ap.Sign(fixtures.AdminKey, ap.Pack())
	m.EXPECT().Approve(gomock.Any(), admin, builder, int64(100), uint64(50)).Return(nil).Times(1)

	tf := rpcshards.TransferFromArguments{Spender: builder, From: admin, To: receiver, Amount: 60}
	tf.Nonce = fixtures.Nonce()
	tf.Sign(fixtures.BuilderKey, tf.Pack())
	m.EXPECT().TransferFrom(gomock.Any(), builder, admin, receiver, int64(60)).Return(nil).Times(1)

	bf := rpcshards.BurnFromArguments{Spender: builder, From: admin, Amount: 5}
	bf.Nonce = fixtures.Nonce()
	bf.Sign(fixtures.BuilderKey, bf.Pack())
	m.EXPECT().BurnFrom(gomock.Any(), builder, admin, int64(5)).Return(fault.InsufficientAllowance).Times(1)

	var reply rpcshards.UpdateReply

	assert.Nil(t, s.TransferShard(&ts, &reply), "wrong TransferShard")
	assert.True(t, reply.OK, "TransferShard not ok")

	reply = rpcshards.UpdateReply{}
	assert.Equal(t, fault.NotShardOwner, s.Transfer(&tr, &reply), "wrong Transfer")
	assert.False(t, reply.OK, "failed Transfer reported ok")

	assert.Nil(t, s.Approve(&ap, &reply), "wrong Approve")
	assert.Nil(t, s.TransferFrom(&tf, &reply), "wrong TransferFrom")
	assert.Equal(t, fault.InsufficientAllowance, s.BurnFrom(&bf, &reply), "wrong BurnFrom")
}

func TestShardsSignerMustBeActor(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s, _, ctl := newHandler(t)
	defer ctl.Finish()

	// the owner cannot sign on the spender's behalf
	tf := rpcshards.TransferFromArguments{
		Spender: fixtures.BuilderKey.Account(),
		From:    fixtures.AdminKey.Account(),
		To:      fixtures.ReceiverKey.Account(),
		Amount:  1,
	}
	tf.Nonce = fixtures.Nonce()
	tf.Sign(fixtures.AdminKey, tf.Pack())

	var reply rpcshards.UpdateReply
	assert.Equal(t, fault.InvalidSignature, s.TransferFrom(&tf, &reply), "wrong signer")
}

func TestShardsQueries(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s, m, ctl := newHandler(t)
	defer ctl.Finish()

	admin := fixtures.AdminKey.Account()
	builder := fixtures.BuilderKey.Account()

	m.EXPECT().Balance(admin).Return(uint64(4)).Times(1)
	m.EXPECT().Allowance(admin, builder).Return(&shards.Allowance{Amount: 40, ExpirationLedger: 9}, nil).Times(1)
	m.EXPECT().Metadata("post-1").Return(&shards.Metadata{Decimal: 0, Name: "post-1", Symbol: "SHRD"}, nil).Times(1)
	m.EXPECT().Holding("post-1", builder).Return(uint64(2)).Times(1)
	m.EXPECT().PostForShard(uint64(12)).Return("post-1", uint64(2), nil).Times(1)
	m.EXPECT().ShardOwner("post-1", uint64(2)).Return(builder, nil).Times(1)

	var balance rpcshards.BalanceReply
	assert.Nil(t, s.Balance(&rpcshards.BalanceArguments{Owner: admin}, &balance), "wrong Balance")
	assert.Equal(t, uint64(4), balance.Balance, "wrong balance")

	var allowance rpcshards.AllowanceReply
	assert.Nil(t, s.Allowance(&rpcshards.AllowanceArguments{From: admin, Spender: builder}, &allowance), "wrong Allowance")
	assert.Equal(t, int64(40), allowance.Amount, "wrong amount")
	assert.Equal(t, uint64(9), allowance.ExpirationLedger, "wrong expiration")

	var metadata rpcshards.MetadataReply
	assert.Nil(t, s.Metadata(&rpcshards.PostArguments{PostID: "post-1"}, &metadata), "wrong Metadata")
	assert.Equal(t, "SHRD", metadata.Symbol, "wrong symbol")

	var holding rpcshards.HoldingReply
	assert.Nil(t, s.Holding(&rpcshards.HoldingArguments{PostID: "post-1", Owner: builder}, &holding), "wrong Holding")
	assert.Equal(t, uint64(2), holding.Count, "wrong holding")

	var location rpcshards.PostForShardReply
	assert.Nil(t, s.PostForShard(&rpcshards.ShardArguments{Index: 12}, &location), "wrong PostForShard")
	assert.Equal(t, "post-1", location.PostID, "wrong post")
	assert.Equal(t, uint64(2), location.Index, "wrong local index")
	assert.Equal(t, builder, location.Owner, "wrong owner")

	err := s.Metadata(&rpcshards.PostArguments{}, &metadata)
	assert.Equal(t, fault.InvalidItem, err, "empty post id")
}

func TestShardsOwners(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s, m, ctl := newHandler(t)
	defer ctl.Finish()

	admin := fixtures.AdminKey.Account()
	owners := []shards.Owner{
		{Index: 3, Account: admin},
		{Index: 4, Account: admin},
	}
	m.EXPECT().Owners("post-1", uint64(3), 2).Return(owners, nil).Times(1)

	var reply rpcshards.OwnersReply
	err := s.Owners(&rpcshards.OwnersArguments{PostID: "post-1", Start: 3, Count: 2}, &reply)
	assert.Nil(t, err, "wrong Owners")
	assert.Equal(t, owners, reply.Owners, "wrong owners")
	assert.Equal(t, uint64(5), reply.NextStart, "wrong next start")

	err = s.Owners(&rpcshards.OwnersArguments{PostID: "post-1", Count: 0}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}

func TestShardsPostAndLifetime(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s, m, ctl := newHandler(t)
	defer ctl.Finish()

	post := shards.Post{
		PostID:      "post-1",
		PostConfig:  shards.PostConfig{Threshold: 3, BuildCount: 1},
		State:       shards.Accumulating,
		TotalShards: 5,
	}
	m.EXPECT().Post("post-1").Return(&post, nil).Times(1)
	m.EXPECT().LiveUntil(ledger.Post, []byte("post-1")).Return(uint64(120960), nil).Times(1)

	admin := fixtures.AdminKey.Account()
	m.EXPECT().LiveUntil(ledger.Account, admin.Bytes()).Return(uint64(0), fault.MissingRecord).Times(1)

	var postReply rpcshards.PostReply
	assert.Nil(t, s.Post(&rpcshards.PostArguments{PostID: "post-1"}, &postReply), "wrong Post")
	assert.Equal(t, &post, postReply.Post, "wrong post")

	var live rpcshards.LiveUntilReply
	assert.Nil(t, s.LiveUntil(&rpcshards.LiveUntilArguments{Kind: "post", Key: "post-1"}, &live), "wrong LiveUntil")
	assert.Equal(t, uint64(120960), live.LiveUntil, "wrong live until")

	err := s.LiveUntil(&rpcshards.LiveUntilArguments{Kind: "account", Key: admin.String()}, &live)
	assert.Equal(t, fault.MissingRecord, err, "unknown account")

	err = s.LiveUntil(&rpcshards.LiveUntilArguments{Kind: "block", Key: "x"}, &live)
	assert.Equal(t, fault.InvalidItem, err, "unknown kind")
}
