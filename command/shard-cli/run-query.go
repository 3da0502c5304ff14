// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := getAccount(m, c.String("owner"), true)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAllowance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from, err := getAccount(m, c.String("from"), true)
	if nil != err {
		return err
	}
	spender, err := getAccount(m, c.String("spender"), false)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Allowance(from, spender)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runMetadata(c *cli.Context) error {

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

	response, err := client.Metadata(postID)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runPost(c *cli.Context) error {

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

	response, err := client.Post(postID)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runPostForShard(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.PostForShard(c.Uint64("index"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runOwners(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	postID, err := getPostID(c.String("post"))
	if nil != err {
		return err
	}

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Owners(postID, c.Uint64("start"), count)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runHolding(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	postID, err := getPostID(c.String("post"))
	if nil != err {
		return err
	}
	owner, err := getAccount(m, c.String("owner"), true)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Holding(postID, owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runLiveUntil(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.LiveUntil(c.String("kind"), c.String("key"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
