// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/ledger"
	"github.com/bewd-social/shardd/rpc/fixtures"
	"github.com/bewd-social/shardd/rpc/mocks"
	"github.com/bewd-social/shardd/shards"
)

func TestDumpPost(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	owner := fixtures.AdminKey.Account()
	post := &shards.Post{
		PostID:      "p1",
		TotalShards: 3,
	}
	metadata := &shards.Metadata{Decimal: 0, Name: "p1", Symbol: "SHRD"}

	m := mocks.NewMockShards(ctl)
	gomock.InOrder(
		m.EXPECT().Post("p1").Return(post, nil).Times(1),
		m.EXPECT().Metadata("p1").Return(metadata, nil).Times(1),
		m.EXPECT().LiveUntil(ledger.Post, []byte("p1")).Return(uint64(99), nil).Times(1),
		m.EXPECT().Owners("p1", uint64(0), shards.MaximumOwnersCount).Return([]shards.Owner{
			{Index: 0, Account: owner},
			{Index: 1, Account: owner},
		}, nil).Times(1),
		m.EXPECT().Owners("p1", uint64(2), shards.MaximumOwnersCount).Return([]shards.Owner{
			{Index: 2, Account: owner},
		}, nil).Times(1),
		m.EXPECT().Owners("p1", uint64(3), shards.MaximumOwnersCount).Return([]shards.Owner{}, nil).Times(1),
	)

	dump, err := dumpPost(m, "p1")
	assert.Nil(t, err, "wrong dumpPost")
	assert.Equal(t, post, dump.Post, "wrong post")
	assert.Equal(t, metadata, dump.Metadata, "wrong metadata")
	assert.Equal(t, uint64(99), dump.LiveUntil, "wrong live until")
	assert.Equal(t, 3, len(dump.Owners), "wrong owner count")
	assert.Equal(t, uint64(2), dump.Owners[2].Index, "wrong last index")
}

func TestDumpPostMissing(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockShards(ctl)
	m.EXPECT().Post("nope").Return(nil, fault.MissingRecord).Times(1)

	_, err := dumpPost(m, "nope")
	assert.Equal(t, fault.MissingRecord, err, "wrong error")
}
