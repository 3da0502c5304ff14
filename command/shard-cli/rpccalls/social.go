// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bewd-social/shardd/account"
	rpcsocial "github.com/bewd-social/shardd/rpc/social"
)

// CreateProfile - register a username for the identity
func (c *Client) CreateProfile(username string) (*rpcsocial.UpdateReply, error) {
	user, err := c.signer()
	if nil != err {
		return nil, err
	}

	args := rpcsocial.CreateProfileArguments{
		User:     user,
		Username: username,
	}
	args.Nonce = nonce()
	args.Sign(c.key, args.Pack())

	reply := &rpcsocial.UpdateReply{}
	if err := c.call("Social.CreateProfile", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Profile - read the profile of an account
func (c *Client) Profile(user *account.Account) (*rpcsocial.ProfileReply, error) {
	args := rpcsocial.AccountArguments{
		Account: user,
	}
	reply := &rpcsocial.ProfileReply{}
	if err := c.call("Social.Profile", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Follow - the identity follows followee, or stops following it
func (c *Client) Follow(followee *account.Account, unfollow bool) (*rpcsocial.UpdateReply, error) {
	follower, err := c.signer()
	if nil != err {
		return nil, err
	}

	method := "Social.Follow"
	if unfollow {
		method = "Social.Unfollow"
	}

	args := rpcsocial.FollowArguments{
		Follower: follower,
		Followee: followee,
	}
	args.Nonce = nonce()
	args.Sign(c.key, args.Pack(method))

	reply := &rpcsocial.UpdateReply{}
	if err := c.call(method, &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Following - the accounts an account follows
func (c *Client) Following(follower *account.Account) (*rpcsocial.FollowingReply, error) {
	args := rpcsocial.AccountArguments{
		Account: follower,
	}
	reply := &rpcsocial.FollowingReply{}
	if err := c.call("Social.Following", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// SendMessage - send text from the identity to receiver
func (c *Client) SendMessage(receiver *account.Account, text string) (*rpcsocial.NumberReply, error) {
	sender, err := c.signer()
	if nil != err {
		return nil, err
	}

	args := rpcsocial.SendMessageArguments{
		Sender:   sender,
		Receiver: receiver,
		Text:     text,
	}
	args.Nonce = nonce()
	args.Sign(c.key, args.Pack())

	reply := &rpcsocial.NumberReply{}
	if err := c.call("Social.SendMessage", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Messages - page of the conversation from sender to receiver
func (c *Client) Messages(sender *account.Account, receiver *account.Account, start uint64, count int) (*rpcsocial.MessagesReply, error) {
	args := rpcsocial.MessagesArguments{
		Sender:   sender,
		Receiver: receiver,
		Start:    start,
		Count:    count,
	}
	reply := &rpcsocial.MessagesReply{}
	if err := c.call("Social.Messages", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// CreatePost - append a post written by the identity
func (c *Client) CreatePost(content string) (*rpcsocial.NumberReply, error) {
	author, err := c.signer()
	if nil != err {
		return nil, err
	}

	args := rpcsocial.CreatePostArguments{
		Author:  author,
		Content: content,
	}
	args.Nonce = nonce()
	args.Sign(c.key, args.Pack())

	reply := &rpcsocial.NumberReply{}
	if err := c.call("Social.CreatePost", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Posts - page of the post list
func (c *Client) Posts(start uint64, count int) (*rpcsocial.PostsReply, error) {
	args := rpcsocial.PostsArguments{
		Start: start,
		Count: count,
	}
	reply := &rpcsocial.PostsReply{}
	if err := c.call("Social.Posts", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// TokenisePostData - the parameters for tokenising a post, the identity is the creator
type TokenisePostData struct {
	PostID      string
	TotalShards uint64
	MetadataURI string
	Threshold   uint64
	IsRWA       bool
}

// TokenisePost - create the shards of a post owned by the identity
func (c *Client) TokenisePost(data *TokenisePostData) (*rpcsocial.TokenisePostReply, error) {
	creator, err := c.signer()
	if nil != err {
		return nil, err
	}

	args := rpcsocial.TokenisePostArguments{
		Creator:     creator,
		PostID:      data.PostID,
		TotalShards: data.TotalShards,
		MetadataURI: data.MetadataURI,
		Threshold:   data.Threshold,
		IsRWA:       data.IsRWA,
	}
	args.Nonce = nonce()
	args.Sign(c.key, args.Pack())

	reply := &rpcsocial.TokenisePostReply{}
	if err := c.call("Social.TokenisePost", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// ClaimShards - the identity buys shards of a tokenised post
func (c *Client) ClaimShards(postID string, amount uint64, payment int64) (*rpcsocial.PostInfoReply, error) {
	builder, err := c.signer()
	if nil != err {
		return nil, err
	}

	args := rpcsocial.ClaimShardsArguments{
		Builder: builder,
		PostID:  postID,
		Amount:  amount,
		Payment: payment,
	}
	args.Nonce = nonce()
	args.Sign(c.key, args.Pack())

	reply := &rpcsocial.PostInfoReply{}
	if err := c.call("Social.ClaimShards", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// PostInfo - tokenisation record of a post
func (c *Client) PostInfo(postID string) (*rpcsocial.PostInfoReply, error) {
	args := rpcsocial.PostInfoArguments{
		PostID: postID,
	}
	reply := &rpcsocial.PostInfoReply{}
	if err := c.call("Social.PostInfo", &args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
