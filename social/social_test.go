// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package social_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/authority"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/social"
)

func TestProfile(t *testing.T) {
	setup(t)
	defer teardown()

	s, _ := newSocial(nil)
	user := makeAccount(t, 1)
	other := makeAccount(t, 2)

	_, err := s.Profile(user)
	assert.Equal(t, fault.MissingRecord, err, "no profile yet")

	assert.Nil(t, s.CreateProfile(authority.Accounts(user), user, "alice"), "create")
	assert.Nil(t, s.CreateProfile(authority.Accounts(user), user, "alice2"), "overwrite")

	p, err := s.Profile(user)
	if assert.Nil(t, err, "profile") {
		assert.Equal(t, "alice2", p.Username, "last write wins")
		assert.True(t, user.Equal(p.Account), "account")
	}

	assert.Equal(t, fault.Unauthorized, s.CreateProfile(authority.Accounts(other), user, "x"), "user must authorise")
	assert.Equal(t, fault.InvalidItem, s.CreateProfile(authority.Accounts(user), user, ""), "empty name")
	assert.Equal(t, fault.InvalidItem, s.CreateProfile(authority.Accounts(user), user, strings.Repeat("x", social.MaximumUsernameLength+1)), "long name")
}

func TestFollow(t *testing.T) {
	setup(t)
	defer teardown()

	s, _ := newSocial(nil)
	a := makeAccount(t, 1)
	b := makeAccount(t, 2)
	c := makeAccount(t, 3)

	auth := authority.Accounts(a)
	assert.Nil(t, s.Follow(auth, a, b), "follow b")
	assert.Nil(t, s.Follow(auth, a, c), "follow c")
	assert.Nil(t, s.Follow(auth, a, b), "follow b again")
	assert.Nil(t, s.Follow(authority.Accounts(b), b, c), "b follows c")

	following, err := s.Following(a)
	assert.Nil(t, err, "following")
	assert.Equal(t, 2, len(following), "set membership")

	assert.Nil(t, s.Unfollow(auth, a, b), "unfollow")
	following, err = s.Following(a)
	assert.Nil(t, err, "following")
	if assert.Equal(t, 1, len(following), "after unfollow") {
		assert.True(t, c.Equal(following[0]), "c remains")
	}

	assert.Nil(t, s.Unfollow(auth, a, b), "unfollow absent is harmless")
	assert.Equal(t, fault.Unauthorized, s.Follow(authority.Accounts(b), a, c), "follower must authorise")
	assert.Equal(t, fault.MissingParameters, s.Follow(auth, a, nil), "no followee")
}

func TestMessages(t *testing.T) {
	setup(t)
	defer teardown()

	s, _ := newSocial(nil)
	a := makeAccount(t, 1)
	b := makeAccount(t, 2)

	texts := []string{"hello", "are you there", "bye"}
	for i, text := range texts {
		n, err := s.SendMessage(authority.Accounts(a), a, b, text)
		assert.Nil(t, err, "send: %d", i)
		assert.Equal(t, uint64(i), n, "number")
	}
	_, err := s.SendMessage(authority.Accounts(b), b, a, "reply")
	assert.Nil(t, err, "reply")

	messages, err := s.Messages(a, b, 0, 10)
	assert.Nil(t, err, "messages")
	if assert.Equal(t, 3, len(messages), "one direction only") {
		for i, m := range messages {
			assert.Equal(t, texts[i], m.Text, "order")
			assert.Equal(t, uint64(i), m.Number, "number")
		}
	}

	messages, err = s.Messages(a, b, 1, 1)
	assert.Nil(t, err, "page")
	if assert.Equal(t, 1, len(messages), "page") {
		assert.Equal(t, "are you there", messages[0].Text, "page")
	}

	messages, err = s.Messages(b, a, 0, 10)
	assert.Nil(t, err, "reverse")
	assert.Equal(t, 1, len(messages), "reverse")

	_, err = s.Messages(a, b, 0, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
	_, err = s.SendMessage(authority.Accounts(a), a, b, "")
	assert.Equal(t, fault.InvalidItem, err, "empty text")
}

func TestPosts(t *testing.T) {
	setup(t)
	defer teardown()

	s, _ := newSocial(nil)
	authors := []*account.Account{makeAccount(t, 1), makeAccount(t, 2)}

	for i := 0; i < 5; i += 1 {
		author := authors[i%2]
		n, err := s.CreatePost(authority.Accounts(author), author, strings.Repeat("post ", i+1))
		assert.Nil(t, err, "create: %d", i)
		assert.Equal(t, uint64(i), n, "number")
	}

	posts, err := s.Posts(0, 3)
	assert.Nil(t, err, "first page")
	assert.Equal(t, 3, len(posts), "first page")

	posts, err = s.Posts(3, 10)
	assert.Nil(t, err, "last page")
	if assert.Equal(t, 2, len(posts), "last page") {
		assert.Equal(t, uint64(3), posts[0].Number, "number")
		assert.True(t, authors[1].Equal(posts[0].Author), "author")
		assert.Equal(t, strings.Repeat("post ", 4), posts[0].Content, "content")
	}

	_, err = s.CreatePost(authority.Accounts(authors[0]), authors[1], "x")
	assert.Equal(t, fault.Unauthorized, err, "author must authorise")
}
