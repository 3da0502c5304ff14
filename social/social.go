// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package social

import (
	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/authority"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/shards"
	"github.com/bewd-social/shardd/storage"
	"github.com/bewd-social/shardd/util"
)

// limits on stored text
const (
	MaximumUsernameLength    = 64
	MaximumMessageLength     = 4096
	MaximumContentLength     = 65536
	MaximumMetadataURILength = 1024
	MaximumListCount         = 100
)

// symbol of every tokenised post
const tokenSymbol = "SHRD"

// key of the global post list counter
var postCountKey = []byte("post-list")

// Social - the social layer over a shard contract
type Social struct {
	log        *logger.L
	contract   shards.Shards
	settlement Settlement
}

// New - create the social layer; a nil settlement logs the payment only
func New(log *logger.L, contract shards.Shards, settlement Settlement) *Social {
	if nil == settlement {
		settlement = &LogSettlement{Log: log}
	}
	return &Social{
		log:        log,
		contract:   contract,
		settlement: settlement,
	}
}

func requireAuth(auth authority.Authoriser, a *account.Account) error {
	if nil == auth || nil == a {
		return fault.Unauthorized
	}
	return auth.RequireAuth(a)
}

func checkText(text string, maximum int) error {
	if 0 == len(text) || len(text) > maximum {
		return fault.InvalidItem
	}
	return nil
}

func checkCount(count int) error {
	if count <= 0 || count > MaximumListCount {
		return fault.InvalidCount
	}
	return nil
}

// account ++ account
func pairKey(a *account.Account, b *account.Account) []byte {
	return append(a.Bytes(), b.Bytes()...)
}

func postKey(postID string) []byte {
	return util.PackBytes(nil, []byte(postID))
}

// next value of a counter, stored incremented
func nextNumber(trx storage.Transaction, p *storage.PoolHandle, key []byte) uint64 {
	n, _ := trx.GetN(p, key)
	trx.PutN(p, key, n+1)
	return n
}
