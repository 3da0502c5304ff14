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

// size of a packed account at the start of a post list record
const accountLength = 33

// PostEntry - one item of the flat post list
type PostEntry struct {
	Number  uint64           `json:"number"`
	Author  *account.Account `json:"author"`
	Content string           `json:"content"`
}

// CreatePost - append content to the flat post list
func (s *Social) CreatePost(auth authority.Authoriser, author *account.Account, content string) (uint64, error) {
	if err := requireAuth(auth, author); nil != err {
		return 0, err
	}
	if err := checkText(content, MaximumContentLength); nil != err {
		return 0, err
	}

	number := uint64(0)
	err := s.contract.Update(func(b *shards.Batch) error {
		trx := b.Transaction()
		number = nextNumber(trx, storage.Pool.Globals, postCountKey)
		trx.Put(storage.Pool.PostList, storage.EncodeN(number), append(author.Bytes(), content...))
		return nil
	})
	if nil != err {
		return 0, err
	}
	s.log.Infof("post: %d  author: %s", number, author)
	return number, nil
}

// Posts - page of the flat post list starting at number start
func (s *Social) Posts(start uint64, count int) ([]PostEntry, error) {
	if err := checkCount(count); nil != err {
		return nil, err
	}
	elements, err := storage.Pool.PostList.NewFetchCursor().Seek(storage.EncodeN(start)).Fetch(count)
	if nil != err {
		return nil, err
	}

	posts := make([]PostEntry, 0, len(elements))
	for _, e := range elements {
		if 8 != len(e.Key) || len(e.Value) < accountLength {
			return nil, fault.TruncatedRecord
		}
		author, err := account.AccountFromBytes(e.Value[:accountLength])
		if nil != err {
			return nil, err
		}
		posts = append(posts, PostEntry{
			Number:  storage.DecodeN(e.Key),
			Author:  author,
			Content: string(e.Value[accountLength:]),
		})
	}
	return posts, nil
}
