// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package social

import (
	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/authority"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/shards"
	"github.com/bewd-social/shardd/storage"
)

// PostInfo - a tokenised post and how many of its shards were claimed
type PostInfo struct {
	PostID      string           `json:"postId"`
	Creator     *account.Account `json:"creator"`
	TotalShards uint64           `json:"totalShards"`
	Claimed     uint64           `json:"claimed"`
	MetadataURI string           `json:"metadataUri"`
}

// claimed(N) ++ creator ++ metadata uri
func (info *PostInfo) pack() []byte {
	buffer := append(storage.EncodeN(info.Claimed), info.Creator.Bytes()...)
	return append(buffer, info.MetadataURI...)
}

func unpackPostInfo(postID string, buffer []byte) (*PostInfo, error) {
	if len(buffer) < 8+accountLength {
		return nil, fault.TruncatedRecord
	}
	creator, err := account.AccountFromBytes(buffer[8 : 8+accountLength])
	if nil != err {
		return nil, err
	}
	return &PostInfo{
		PostID:      postID,
		Creator:     creator,
		Claimed:     storage.DecodeN(buffer),
		MetadataURI: string(buffer[8+accountLength:]),
	}, nil
}

func readPostInfo(trx storage.Transaction, postID string) (*PostInfo, error) {
	buffer := trx.Get(storage.Pool.TokenisedPost, postKey(postID))
	if nil == buffer {
		return nil, fault.MissingRecord
	}
	return unpackPostInfo(postID, buffer)
}

// TokenisePost - issue the shards of a post to its creator
//
// the post's shards are named after the post with symbol SHRD and no decimals
func (s *Social) TokenisePost(auth authority.Authoriser, creator *account.Account, postID string, totalShards uint64, metadataURI string, threshold uint64, isRWA bool) (uint64, error) {
	if len(metadataURI) > MaximumMetadataURILength {
		return 0, fault.InvalidItem
	}

	metadata := shards.Metadata{
		Decimal: 0,
		Name:    postID,
		Symbol:  tokenSymbol,
	}

	base := uint64(0)
	err := s.contract.Update(func(b *shards.Batch) error {
		var err error
		base, err = b.InitializePost(auth, creator, postID, metadata, threshold, totalShards, isRWA)
		if nil != err {
			return err
		}
		info := PostInfo{
			Creator:     creator,
			MetadataURI: metadataURI,
		}
		b.Transaction().Put(storage.Pool.TokenisedPost, postKey(postID), info.pack())
		return nil
	})
	if nil != err {
		s.log.Warnf("tokenise: %q  error: %s", postID, err)
		return 0, err
	}
	s.log.Infof("tokenise: %q  creator: %s  shards: %d  base: %d", postID, creator, totalShards, base)
	return base, nil
}

// ClaimShards - builder takes the next amount unclaimed shards of a post
//
// payment is settled from builder to creator before any shard moves;
// a settlement error aborts the claim
func (s *Social) ClaimShards(auth authority.Authoriser, builder *account.Account, postID string, amount uint64, payment int64) (*PostInfo, error) {
	if err := requireAuth(auth, builder); nil != err {
		return nil, err
	}
	if 0 == amount {
		return nil, fault.InvalidCount
	}
	if payment < 0 {
		return nil, fault.NegativeAmount
	}

	var info *PostInfo
	err := s.contract.Update(func(b *shards.Batch) error {
		var err error
		info, err = readPostInfo(b.Transaction(), postID)
		if nil != err {
			return err
		}
		info.TotalShards, err = b.ShardTotal(postID)
		if nil != err {
			return err
		}
		if info.Claimed+amount < info.Claimed || info.Claimed+amount > info.TotalShards {
			return fault.InsufficientSupply
		}

		err = s.settlement.Settle(builder, info.Creator, postID, amount, payment)
		if nil != err {
			return err
		}

		err = b.ClaimShards(info.Creator, builder, postID, info.Claimed, amount)
		if nil != err {
			return err
		}

		info.Claimed += amount
		b.Transaction().Put(storage.Pool.TokenisedPost, postKey(postID), info.pack())
		return nil
	})
	if nil != err {
		s.log.Warnf("claim: %q  builder: %s  amount: %d  error: %s", postID, builder, amount, err)
		return nil, err
	}
	s.log.Infof("claim: %q  builder: %s  amount: %d  claimed: %d/%d", postID, builder, amount, info.Claimed, info.TotalShards)
	return info, nil
}

// PostInfo - creator, supply and claimed count of a tokenised post
func (s *Social) PostInfo(postID string) (*PostInfo, error) {
	buffer := storage.Pool.TokenisedPost.Get(postKey(postID))
	if nil == buffer {
		return nil, fault.MissingRecord
	}
	info, err := unpackPostInfo(postID, buffer)
	if nil != err {
		return nil, err
	}
	post, err := s.contract.Post(postID)
	if nil != err {
		return nil, err
	}
	info.TotalShards = post.TotalShards
	return info, nil
}
