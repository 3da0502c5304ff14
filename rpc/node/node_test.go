// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/counter"
	"github.com/bewd-social/shardd/rpc/fixtures"
	"github.com/bewd-social/shardd/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	var c counter.Counter
	c.Increment()
	c.Increment()
	c.Decrement()

	start := time.Now().Add(-time.Minute)
	n := node.New(
		logger.New(fixtures.LogCategory),
		start,
		"1.2",
		"testing",
		func() uint64 { return 77 },
		&c,
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "testing", reply.Chain, "wrong chain")
	assert.Equal(t, "1.2", reply.Version, "wrong version")
	assert.Equal(t, uint64(77), reply.Ledger, "wrong ledger")
	assert.Equal(t, uint64(1), reply.RPCs.Current, "wrong current connections")
	assert.Equal(t, uint64(2), reply.RPCs.Peak, "wrong peak connections")
	assert.Equal(t, start, reply.StartTime, "wrong start time")
	assert.NotEqual(t, "", reply.Uptime, "missing uptime")
}
