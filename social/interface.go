// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package social

import (
	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/authority"
)

// Network - the social layer as seen by its callers
type Network interface {
	CreateProfile(authority.Authoriser, *account.Account, string) error
	Profile(*account.Account) (*Profile, error)
	Follow(authority.Authoriser, *account.Account, *account.Account) error
	Unfollow(authority.Authoriser, *account.Account, *account.Account) error
	Following(*account.Account) ([]*account.Account, error)

	SendMessage(authority.Authoriser, *account.Account, *account.Account, string) (uint64, error)
	Messages(*account.Account, *account.Account, uint64, int) ([]Message, error)

	CreatePost(authority.Authoriser, *account.Account, string) (uint64, error)
	Posts(uint64, int) ([]PostEntry, error)

	TokenisePost(authority.Authoriser, *account.Account, string, uint64, string, uint64, bool) (uint64, error)
	ClaimShards(authority.Authoriser, *account.Account, string, uint64, int64) (*PostInfo, error)
	PostInfo(string) (*PostInfo, error)
}

var _ Network = (*Social)(nil)
