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

func runInitialisePost(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	postID, err := getPostID(c.String("post"))
	if nil != err {
		return err
	}

	decimal := c.Uint64("decimal")
	if decimal > 18 {
		return fmt.Errorf("invalid decimal: %d", decimal)
	}

	total := c.Uint64("total")
	if 0 == total {
		return fmt.Errorf("invalid total shards: %d", total)
	}

	data := &rpccalls.InitialisePostData{
		PostID:      postID,
		Decimal:     uint32(decimal),
		Name:        c.String("name"),
		Symbol:      c.String("symbol"),
		Threshold:   c.Uint64("threshold"),
		TotalShards: total,
		IsRWA:       c.Bool("rwa"),
	}

	if m.verbose {
		fmt.Fprintf(m.e, "post: %s\n", postID)
		fmt.Fprintf(m.e, "total: %d  threshold: %d\n", data.TotalShards, data.Threshold)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.InitialisePost(data)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBuild(c *cli.Context) error {

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

	response, err := client.Build(postID)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTransferShard(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	postID, err := getPostID(c.String("post"))
	if nil != err {
		return err
	}
	to, err := getAccount(m, c.String("receiver"), false)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TransferShard(to, postID, c.Uint64("index"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runApprove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	spender, err := getAccount(m, c.String("spender"), false)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Approve(spender, c.Int64("amount"), c.Uint64("expiration"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	to, err := getAccount(m, c.String("receiver"), false)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(to, c.Uint64("index"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTransferFrom(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from, err := getAccount(m, c.String("from"), false)
	if nil != err {
		return err
	}
	to, err := getAccount(m, c.String("receiver"), false)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TransferFrom(from, to, c.Int64("amount"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBurn(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Burn(c.Int64("amount"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBurnFrom(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from, err := getAccount(m, c.String("from"), false)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.BurnFrom(from, c.Int64("amount"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
