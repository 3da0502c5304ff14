// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/counter"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/rpc/certificate"
	"github.com/bewd-social/shardd/rpc/fixtures"
	"github.com/bewd-social/shardd/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}

	var count counter.Counter

	s := rpc.NewServer()
	err := s.Register(Add{})
	if err != nil {
		t.Fatalf("register with error: %s", err)
	}

	tlsCertificate, fin, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		fixtures.Certificate(),
		fixtures.Key(),
	)
	if err != nil {
		t.Fatalf("get certificate with error: %s", err)
	}

	l, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		s,
		tlsCertificate,
		fin,
	)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Close()

	tlsConfig := tls.Config{
		InsecureSkipVerify: true,
	}

	c, err := tls.Dial("tcp", listen, &tlsConfig)
	if err != nil {
		t.Fatalf("dial with error: %s", err)
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	defer client.Close()

	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Peak(), "wrong connection peak")
}

func TestRpcListenerInvalidConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	var count counter.Counter
	s := rpc.NewServer()

	items := []struct {
		con listeners.RPCConfiguration
		err error
	}{
		{listeners.RPCConfiguration{MaximumConnections: 0, Listen: []string{"127.0.0.1:2130"}}, fault.MissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{}}, fault.MissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{"localhost:2130"}}, fault.InvalidIPAddress},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{"127.0.0.1:0"}}, fault.InvalidPortNumber},
	}

	for i, item := range items {
		_, err := listeners.NewRPC(
			&item.con,
			logger.New(fixtures.LogCategory),
			&count,
			s,
			&tls.Config{},
			[32]byte{},
		)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}
}
