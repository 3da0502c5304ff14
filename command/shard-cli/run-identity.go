// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bewd-social/shardd/account"
)

type identityReply struct {
	Account *account.Account `json:"account"`
	Testnet bool             `json:"testnet"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := account.NewPrivateKey(m.testnet, rand.Reader)
	if nil != err {
		return err
	}

	if err := writeIdentity(m.identityFile, key); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "wrote identity: %q\n", m.identityFile)
	}

	return printJson(m.w, identityReply{
		Account: key.Account(),
		Testnet: key.Test,
	})
}

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if nil == m.key {
		return ErrMissingIdentity
	}

	return printJson(m.w, identityReply{
		Account: m.key.Account(),
		Testnet: m.key.Test,
	})
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetNodeInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, info)
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
