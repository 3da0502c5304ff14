// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - RPC information about the running daemon
package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/counter"
	"github.com/bewd-social/shardd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Chain    string
	Sequence func() uint64
	counter  *counter.Counter
}

// New - create the node RPC handler, sequence reports the current ledger
func New(log *logger.L, start time.Time, version string, chain string, sequence func() uint64, count *counter.Counter) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Chain:    chain,
		Sequence: sequence,
		counter:  count,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string          `json:"chain"`
	Version   string          `json:"version"`
	Uptime    string          `json:"uptime"`
	Ledger    uint64          `json:"ledger,string"`
	RPCs      ConnectionCount `json:"rpcs"`
	StartTime time.Time       `json:"startTime"`
}

// ConnectionCount - open client connections
type ConnectionCount struct {
	Current uint64 `json:"current"`
	Peak    uint64 `json:"peak"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.StartTime = node.Start
	reply.Ledger = node.Sequence()
	reply.RPCs = ConnectionCount{
		Current: node.counter.Uint64(),
		Peak:    node.counter.Peak(),
	}
	return nil
}
