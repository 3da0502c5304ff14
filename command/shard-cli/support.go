// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/command/shard-cli/rpccalls"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/nodes"
	"github.com/bewd-social/shardd/util"
)

// common errors - keep in alphabetic order
const (
	ErrMissingAccount  = fault.InvalidError("missing account")
	ErrMissingIdentity = fault.NotFoundError("identity file not found")
	ErrMissingPostID   = fault.InvalidError("missing post id")
)

// read the identity key; a missing optional file is not an error
func readIdentity(fileName string, optional bool) (*account.PrivateKey, error) {
	if !util.EnsureFileExists(fileName) {
		if optional {
			return nil, nil
		}
		return nil, ErrMissingIdentity
	}

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return account.PrivateKeyFromBase58(strings.TrimSpace(string(data)))
}

// write a new identity key; never overwrites
func writeIdentity(fileName string, key *account.PrivateKey) error {
	if util.EnsureFileExists(fileName) {
		return fault.KeyFileAlreadyExists
	}
	return ioutil.WriteFile(fileName, []byte(key.String()+"\n"), 0600)
}

// decode an account argument, blank selects the identity when allowed
func getAccount(m *metadata, value string, defaultIdentity bool) (*account.Account, error) {
	value = strings.TrimSpace(value)
	if "" == value {
		if defaultIdentity && nil != m.key {
			return m.key.Account(), nil
		}
		return nil, ErrMissingAccount
	}
	a, err := account.AccountFromBase58(value)
	if nil != err {
		return nil, err
	}
	if a.IsTesting() != m.testnet {
		return nil, fault.WrongNetworkForPublicKey
	}
	return a, nil
}

func getPostID(value string) (string, error) {
	value = strings.TrimSpace(value)
	if "" == value {
		return "", ErrMissingPostID
	}
	return value, nil
}

func newClient(m *metadata) (*rpccalls.Client, error) {
	if "" != m.nodes {
		err := resolveNodes(m)
		if nil != err {
			return nil, err
		}
	}
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	return rpccalls.NewClient(m.connect, m.fingerprint, m.key, m.verbose, m.e)
}

// replace the connection with the first node advertised by the domain
//
// an explicit fingerprint still takes precedence
func resolveNodes(m *metadata) error {
	texts, err := m.resolve(m.nodes)
	if nil != err {
		return err
	}
	found, err := nodes.Decode(texts)
	if nil != err {
		return err
	}
	if m.verbose {
		for i, n := range found {
			fmt.Fprintf(m.e, "node[%d]: %s\n", i, n)
		}
	}
	m.connect = found[0].Connect()
	if "" == m.fingerprint {
		m.fingerprint = hex.EncodeToString(found[0].Fingerprint)
	}
	return nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
