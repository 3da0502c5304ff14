// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shards

import (
	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/authority"
	"github.com/bewd-social/shardd/ledger"
)

// Shards - the contract as seen by its callers
type Shards interface {
	InitializePost(authority.Authoriser, *account.Account, string, Metadata, uint64, uint64, bool) (uint64, error)
	BuildPost(authority.Authoriser, string, *account.Account) (*PostConfig, bool, error)
	TransferShard(authority.Authoriser, *account.Account, *account.Account, string, uint64) error
	Approve(authority.Authoriser, *account.Account, *account.Account, int64, uint64) error
	Transfer(authority.Authoriser, *account.Account, *account.Account, uint64) error
	TransferFrom(authority.Authoriser, *account.Account, *account.Account, *account.Account, int64) error
	Burn(authority.Authoriser, *account.Account, int64) error
	BurnFrom(authority.Authoriser, *account.Account, *account.Account, int64) error

	Balance(*account.Account) uint64
	Allowance(*account.Account, *account.Account) (*Allowance, error)
	Metadata(string) (*Metadata, error)
	PostForShard(uint64) (string, uint64, error)
	ShardOwner(string, uint64) (*account.Account, error)
	Owners(string, uint64, int) ([]Owner, error)
	Holding(string, *account.Account) uint64
	Post(string) (*Post, error)
	LiveUntil(ledger.Kind, []byte) (uint64, error)

	Update(func(*Batch) error) error
}

var _ Shards = (*Contract)(nil)
