// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bewd-social/shardd/background"
	"github.com/bewd-social/shardd/fault"
)

func TestClock(t *testing.T) {
	setup(t)
	defer teardown()

	p := background.Start(background.Processes{&clock{interval: 5 * time.Millisecond}}, logger.New("testing"))
	time.Sleep(100 * time.Millisecond)
	p.Stop()

	n := CurrentSequence()
	assert.True(t, n > 0, "ledger advanced")

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, CurrentSequence(), "no advance after stop")
}

func TestSweep(t *testing.T) {
	setup(t)
	defer teardown()

	l := Lifetime{Threshold: 1, Bump: 1}
	for _, key := range []string{"a", "b", "c"} {
		extend(t, l, Post, key)
	}
	log := logger.New("testing")
	assert.Equal(t, 0, sweep(log), "nothing expired yet")

	advance(t, 2)
	assert.Equal(t, 3, sweep(log), "all expired")
}

func TestInitialiseFinalise(t *testing.T) {
	setup(t)
	defer teardown()

	c := &Configuration{CloseInterval: 1, SweepInterval: 1}
	assert.Nil(t, Initialise(c), "initialise")
	assert.Equal(t, fault.AlreadyInitialised, Initialise(c), "second initialise")
	assert.Nil(t, Finalise(), "finalise")
	assert.Equal(t, fault.NotInitialised, Finalise(), "second finalise")
}
