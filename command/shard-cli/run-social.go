// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bewd-social/shardd/command/shard-cli/rpccalls"
)

func runCreateProfile(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	username := c.String("username")
	if "" == username {
		return fmt.Errorf("missing username")
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateProfile(username)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runProfile(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	user, err := getAccount(m, c.String("owner"), true)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Profile(user)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runFollow(c *cli.Context) error {
	return follow(c, false)
}

func runUnfollow(c *cli.Context) error {
	return follow(c, true)
}

func follow(c *cli.Context, unfollow bool) error {

	m := c.App.Metadata["config"].(*metadata)

	followee, err := getAccount(m, c.String("account"), false)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Follow(followee, unfollow)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runFollowing(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	follower, err := getAccount(m, c.String("owner"), true)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Following(follower)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSendMessage(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	receiver, err := getAccount(m, c.String("receiver"), false)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SendMessage(receiver, c.String("text"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runMessages(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sender, err := getAccount(m, c.String("sender"), true)
	if nil != err {
		return err
	}
	receiver, err := getAccount(m, c.String("receiver"), false)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Messages(sender, receiver, c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runCreatePost(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreatePost(c.String("text"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runPosts(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Posts(c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTokenisePost(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	postID, err := getPostID(c.String("post"))
	if nil != err {
		return err
	}

	data := &rpccalls.TokenisePostData{
		PostID:      postID,
		TotalShards: c.Uint64("total"),
		MetadataURI: c.String("uri"),
		Threshold:   c.Uint64("threshold"),
		IsRWA:       c.Bool("rwa"),
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TokenisePost(data)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runClaimShards(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	postID, err := getPostID(c.String("post"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ClaimShards(postID, c.Uint64("amount"), c.Int64("payment"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runPostInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	postID, err := getPostID(c.String("post"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.PostInfo(postID)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
