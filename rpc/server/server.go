// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - register all RPC handlers
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/authority"
	"github.com/bewd-social/shardd/counter"
	"github.com/bewd-social/shardd/rpc/node"
	rpcshards "github.com/bewd-social/shardd/rpc/shards"
	rpcsocial "github.com/bewd-social/shardd/rpc/social"
	"github.com/bewd-social/shardd/shards"
	"github.com/bewd-social/shardd/social"
)

// Services - the state the handlers operate on
type Services struct {
	Contract shards.Shards
	Network  social.Network
	Verifier *authority.Verifier
	Sequence func() uint64
	Chain    string
	Test     bool
}

// Create - a server with the Shards, Social and Node services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, services *Services) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(rpcshards.New(log, services.Contract, services.Verifier, services.Test))
	_ = server.Register(rpcsocial.New(log, services.Network, services.Verifier, services.Test))
	_ = server.Register(node.New(log, start, version, services.Chain, services.Sequence, rpcCount))

	return server
}
