// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package social - RPC access to profiles, messages, posts and shard claims
package social

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/authority"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/rpc/ratelimit"
	"github.com/bewd-social/shardd/social"
)

const (
	rateLimitSocial = 200
	rateBurstSocial = 100
)

// Social - type for RPC
type Social struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Network  social.Network
	Verifier *authority.Verifier
	Test     bool
}

// New - create the social RPC handler
func New(log *logger.L, network social.Network, verifier *authority.Verifier, test bool) *Social {
	return &Social{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitSocial, rateBurstSocial),
		Network:  network,
		Verifier: verifier,
		Test:     test,
	}
}

// UpdateReply - result of a state changing call
type UpdateReply struct {
	OK bool `json:"ok"`
}

// NumberReply - sequence number assigned to a new item
type NumberReply struct {
	Number uint64 `json:"number,string"`
}

func (s *Social) checkNetwork(accounts ...*account.Account) error {
	for _, a := range accounts {
		if nil == a {
			return fault.MissingParameters
		}
		if a.IsTesting() != s.Test {
			return fault.WrongNetworkForPublicKey
		}
	}
	return nil
}

// Profiles
// --------

// CreateProfileArguments - set a username
type CreateProfileArguments struct {
	User     *account.Account `json:"user"`
	Username string           `json:"username"`
	authority.Request
}

// Pack - the message signed by the user
func (arguments *CreateProfileArguments) Pack() []byte {
	return authority.Pack("Social.CreateProfile", arguments.Nonce,
		authority.PackAccount(arguments.User),
		[]byte(arguments.Username),
	)
}

// CreateProfile - set or replace a profile
func (s *Social) CreateProfile(arguments *CreateProfileArguments, reply *UpdateReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Social.CreateProfile: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.User); nil != err {
		return err
	}

	auth, err := arguments.Authorise(s.Verifier, arguments.User, arguments.Pack())
	if nil != err {
		return err
	}

	if err := s.Network.CreateProfile(auth, arguments.User, arguments.Username); nil != err {
		return err
	}
	reply.OK = true
	return nil
}

// AccountArguments - a single account
type AccountArguments struct {
	Account *account.Account `json:"account"`
}

// ProfileReply - stored profile
type ProfileReply struct {
	Profile *social.Profile `json:"profile"`
}

// Profile - read a profile
func (s *Social) Profile(arguments *AccountArguments, reply *ProfileReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Social.Profile: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.Account); nil != err {
		return err
	}

	profile, err := s.Network.Profile(arguments.Account)
	if nil != err {
		return err
	}
	reply.Profile = profile
	return nil
}

// Follows
// -------

// FollowArguments - follower and followee
type FollowArguments struct {
	Follower *account.Account `json:"follower"`
	Followee *account.Account `json:"followee"`
	authority.Request
}

// Pack - the message signed by the follower
//
// method distinguishes follow from unfollow
func (arguments *FollowArguments) Pack(method string) []byte {
	return authority.Pack(method, arguments.Nonce,
		authority.PackAccount(arguments.Follower),
		authority.PackAccount(arguments.Followee),
	)
}

// Follow - add followee to the follower's list
func (s *Social) Follow(arguments *FollowArguments, reply *UpdateReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Social.Follow: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.Follower, arguments.Followee); nil != err {
		return err
	}

	auth, err := arguments.Authorise(s.Verifier, arguments.Follower, arguments.Pack("Social.Follow"))
	if nil != err {
		return err
	}

	if err := s.Network.Follow(auth, arguments.Follower, arguments.Followee); nil != err {
		return err
	}
	reply.OK = true
	return nil
}

// Unfollow - remove followee from the follower's list
func (s *Social) Unfollow(arguments *FollowArguments, reply *UpdateReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Social.Unfollow: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.Follower, arguments.Followee); nil != err {
		return err
	}

	auth, err := arguments.Authorise(s.Verifier, arguments.Follower, arguments.Pack("Social.Unfollow"))
	if nil != err {
		return err
	}

	if err := s.Network.Unfollow(auth, arguments.Follower, arguments.Followee); nil != err {
		return err
	}
	reply.OK = true
	return nil
}

// FollowingReply - accounts followed
type FollowingReply struct {
	Following []*account.Account `json:"following"`
}

// Following - list the accounts an account follows
func (s *Social) Following(arguments *AccountArguments, reply *FollowingReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Social.Following: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.Account); nil != err {
		return err
	}

	following, err := s.Network.Following(arguments.Account)
	if nil != err {
		return err
	}
	reply.Following = following
	return nil
}

// Messages
// --------

// SendMessageArguments - text from sender to receiver
type SendMessageArguments struct {
	Sender   *account.Account `json:"sender"`
	Receiver *account.Account `json:"receiver"`
	Text     string           `json:"text"`
	authority.Request
}

// Pack - the message signed by the sender
func (arguments *SendMessageArguments) Pack() []byte {
	return authority.Pack("Social.SendMessage", arguments.Nonce,
		authority.PackAccount(arguments.Sender),
		authority.PackAccount(arguments.Receiver),
		[]byte(arguments.Text),
	)
}

// SendMessage - append to a conversation
func (s *Social) SendMessage(arguments *SendMessageArguments, reply *NumberReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Social.SendMessage: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.Sender, arguments.Receiver); nil != err {
		return err
	}

	auth, err := arguments.Authorise(s.Verifier, arguments.Sender, arguments.Pack())
	if nil != err {
		return err
	}

	n, err := s.Network.SendMessage(auth, arguments.Sender, arguments.Receiver, arguments.Text)
	if nil != err {
		return err
	}
	reply.Number = n
	return nil
}

// MessagesArguments - a page of a conversation
type MessagesArguments struct {
	Sender   *account.Account `json:"sender"`
	Receiver *account.Account `json:"receiver"`
	Start    uint64           `json:"start,string"`
	Count    int              `json:"count"`
}

// MessagesReply - messages in sending order
type MessagesReply struct {
	Messages []social.Message `json:"messages"`
}

// Messages - read a conversation
func (s *Social) Messages(arguments *MessagesArguments, reply *MessagesReply) error {

	if nil == arguments {
		return fault.InvalidItem
	}

	if err := ratelimit.LimitN(s.Limiter, arguments.Count, social.MaximumListCount); nil != err {
		return err
	}

	s.Log.Infof("Social.Messages: %+v", arguments)

	if err := s.checkNetwork(arguments.Sender, arguments.Receiver); nil != err {
		return err
	}

	messages, err := s.Network.Messages(arguments.Sender, arguments.Receiver, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Messages = messages
	return nil
}

// Posts
// -----

// CreatePostArguments - content for the post list
type CreatePostArguments struct {
	Author  *account.Account `json:"author"`
	Content string           `json:"content"`
	authority.Request
}

// Pack - the message signed by the author
func (arguments *CreatePostArguments) Pack() []byte {
	return authority.Pack("Social.CreatePost", arguments.Nonce,
		authority.PackAccount(arguments.Author),
		[]byte(arguments.Content),
	)
}

// CreatePost - append to the post list
func (s *Social) CreatePost(arguments *CreatePostArguments, reply *NumberReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Social.CreatePost: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.Author); nil != err {
		return err
	}

	auth, err := arguments.Authorise(s.Verifier, arguments.Author, arguments.Pack())
	if nil != err {
		return err
	}

	n, err := s.Network.CreatePost(auth, arguments.Author, arguments.Content)
	if nil != err {
		return err
	}
	reply.Number = n
	return nil
}

// PostsArguments - a page of the post list
type PostsArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// PostsReply - posts in creation order
type PostsReply struct {
	Posts []social.PostEntry `json:"posts"`
}

// Posts - page through the post list
func (s *Social) Posts(arguments *PostsArguments, reply *PostsReply) error {

	if nil == arguments {
		return fault.InvalidItem
	}

	if err := ratelimit.LimitN(s.Limiter, arguments.Count, social.MaximumListCount); nil != err {
		return err
	}

	s.Log.Infof("Social.Posts: %+v", arguments)

	posts, err := s.Network.Posts(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Posts = posts
	return nil
}

// Tokenisation
// ------------

// TokenisePostArguments - issue shards for a post
type TokenisePostArguments struct {
	Creator     *account.Account `json:"creator"`
	PostID      string           `json:"postId"`
	TotalShards uint64           `json:"totalShards,string"`
	MetadataURI string           `json:"metadataUri"`
	Threshold   uint64           `json:"threshold,string"`
	IsRWA       bool             `json:"isRwa"`
	authority.Request
}

// Pack - the message signed by the creator
func (arguments *TokenisePostArguments) Pack() []byte {
	return authority.Pack("Social.TokenisePost", arguments.Nonce,
		authority.PackAccount(arguments.Creator),
		[]byte(arguments.PostID),
		authority.PackUint(arguments.TotalShards),
		[]byte(arguments.MetadataURI),
		authority.PackUint(arguments.Threshold),
		authority.PackBool(arguments.IsRWA),
	)
}

// TokenisePostReply - global index of the post's first shard
type TokenisePostReply struct {
	BaseIndex uint64 `json:"baseIndex,string"`
}

// TokenisePost - create the shards of a post
func (s *Social) TokenisePost(arguments *TokenisePostArguments, reply *TokenisePostReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Social.TokenisePost: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.Creator); nil != err {
		return err
	}

	auth, err := arguments.Authorise(s.Verifier, arguments.Creator, arguments.Pack())
	if nil != err {
		return err
	}

	base, err := s.Network.TokenisePost(auth, arguments.Creator, arguments.PostID, arguments.TotalShards, arguments.MetadataURI, arguments.Threshold, arguments.IsRWA)
	if nil != err {
		return err
	}
	reply.BaseIndex = base
	return nil
}

// ClaimShardsArguments - buy unclaimed shards from the creator
type ClaimShardsArguments struct {
	Builder *account.Account `json:"builder"`
	PostID  string           `json:"postId"`
	Amount  uint64           `json:"amount,string"`
	Payment int64            `json:"payment,string"`
	authority.Request
}

// Pack - the message signed by the builder
func (arguments *ClaimShardsArguments) Pack() []byte {
	return authority.Pack("Social.ClaimShards", arguments.Nonce,
		authority.PackAccount(arguments.Builder),
		[]byte(arguments.PostID),
		authority.PackUint(arguments.Amount),
		authority.PackInt(arguments.Payment),
	)
}

// PostInfoReply - tokenised post record
type PostInfoReply struct {
	Info *social.PostInfo `json:"info"`
}

// ClaimShards - settle payment and move shards to the builder
func (s *Social) ClaimShards(arguments *ClaimShardsArguments, reply *PostInfoReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Social.ClaimShards: %+v", arguments)

	if nil == arguments {
		return fault.InvalidItem
	}
	if err := s.checkNetwork(arguments.Builder); nil != err {
		return err
	}

	auth, err := arguments.Authorise(s.Verifier, arguments.Builder, arguments.Pack())
	if nil != err {
		return err
	}

	info, err := s.Network.ClaimShards(auth, arguments.Builder, arguments.PostID, arguments.Amount, arguments.Payment)
	if nil != err {
		return err
	}
	reply.Info = info
	return nil
}

// PostInfoArguments - a tokenised post
type PostInfoArguments struct {
	PostID string `json:"postId"`
}

// PostInfo - creator, total, claimed and metadata URI of a tokenised post
func (s *Social) PostInfo(arguments *PostInfoArguments, reply *PostInfoReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	s.Log.Infof("Social.PostInfo: %+v", arguments)

	if nil == arguments || "" == arguments.PostID {
		return fault.InvalidItem
	}

	info, err := s.Network.PostInfo(arguments.PostID)
	if nil != err {
		return err
	}
	reply.Info = info
	return nil
}
