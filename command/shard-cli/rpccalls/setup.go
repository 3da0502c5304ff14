// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"crypto/tls"
	"encoding/hex"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/rpc/certificate"
)

// errors
const (
	ErrNoIdentity          = fault.NotFoundError("no identity key for signed request")
	ErrFingerprintMismatch = fault.InvalidError("server certificate fingerprint mismatch")
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	key     *account.PrivateKey
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a shardd
//
// fingerprint is the hex SHA3-256 of the server certificate; blank
// accepts any certificate
func NewClient(connect string, fingerprint string, key *account.PrivateKey, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	if "" != fingerprint {
		if err := checkFingerprint(conn, fingerprint); nil != err {
			conn.Close()
			return nil, err
		}
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		key:     key,
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the shardd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

func checkFingerprint(conn *tls.Conn, fingerprint string) error {
	expected, err := hex.DecodeString(fingerprint)
	if nil != err {
		return err
	}
	certificates := conn.ConnectionState().PeerCertificates
	if 0 == len(certificates) {
		return ErrFingerprintMismatch
	}
	actual := certificate.Fingerprint(certificates[0].Raw)
	if !bytes.Equal(expected, actual[:]) {
		return ErrFingerprintMismatch
	}
	return nil
}

// identity account, needed by every signed request
func (c *Client) signer() (*account.Account, error) {
	if nil == c.key {
		return nil, ErrNoIdentity
	}
	return c.key.Account(), nil
}

// nonce distinguishes otherwise identical requests
func nonce() uint64 {
	return uint64(time.Now().UnixNano())
}

// call a method with verbose tracing of request and reply
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {

	c.printJson(method+" Request", arguments)

	if err := c.client.Call(method, arguments, reply); nil != err {
		return err
	}

	c.printJson(method+" Reply", reply)

	return nil
}
