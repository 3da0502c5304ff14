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

// Profile - display name of an account
type Profile struct {
	Account  *account.Account `json:"account"`
	Username string           `json:"username"`
}

// CreateProfile - set or replace the profile of user
func (s *Social) CreateProfile(auth authority.Authoriser, user *account.Account, username string) error {
	if err := requireAuth(auth, user); nil != err {
		return err
	}
	if err := checkText(username, MaximumUsernameLength); nil != err {
		return err
	}
	err := s.contract.Update(func(b *shards.Batch) error {
		b.Transaction().Put(storage.Pool.Profiles, user.Bytes(), []byte(username))
		return nil
	})
	if nil != err {
		return err
	}
	s.log.Infof("profile: %s  username: %q", user, username)
	return nil
}

// Profile - read the profile of user
func (s *Social) Profile(user *account.Account) (*Profile, error) {
	if nil == user {
		return nil, fault.MissingParameters
	}
	username := storage.Pool.Profiles.Get(user.Bytes())
	if nil == username {
		return nil, fault.MissingRecord
	}
	return &Profile{
		Account:  user,
		Username: string(username),
	}, nil
}

// Follow - add followee to the follow list of follower
func (s *Social) Follow(auth authority.Authoriser, follower *account.Account, followee *account.Account) error {
	if err := requireAuth(auth, follower); nil != err {
		return err
	}
	if nil == followee {
		return fault.MissingParameters
	}
	err := s.contract.Update(func(b *shards.Batch) error {
		b.Transaction().Put(storage.Pool.Follows, pairKey(follower, followee), []byte{0x01})
		return nil
	})
	if nil != err {
		return err
	}
	s.log.Infof("follow: %s  followee: %s", follower, followee)
	return nil
}

// Unfollow - remove followee from the follow list of follower
func (s *Social) Unfollow(auth authority.Authoriser, follower *account.Account, followee *account.Account) error {
	if err := requireAuth(auth, follower); nil != err {
		return err
	}
	if nil == followee {
		return fault.MissingParameters
	}
	err := s.contract.Update(func(b *shards.Batch) error {
		b.Transaction().Delete(storage.Pool.Follows, pairKey(follower, followee))
		return nil
	})
	if nil != err {
		return err
	}
	s.log.Infof("unfollow: %s  followee: %s", follower, followee)
	return nil
}

// Following - accounts followed by follower
func (s *Social) Following(follower *account.Account) ([]*account.Account, error) {
	if nil == follower {
		return nil, fault.MissingParameters
	}
	prefix := follower.Bytes()
	followees := []*account.Account{}
	err := storage.Pool.Follows.NewFetchCursor().Within(prefix).Map(func(key []byte, value []byte) error {
		a, err := account.AccountFromBytes(key[len(prefix):])
		if nil != err {
			return err
		}
		followees = append(followees, a)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return followees, nil
}
