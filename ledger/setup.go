// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/background"
	"github.com/bewd-social/shardd/fault"
)

// defaults in seconds
const (
	defaultCloseInterval = 5
	defaultSweepInterval = 600
)

// Configuration - ledger clock and lifetime settings
type Configuration struct {
	CloseInterval     int    `gluamapper:"close_interval" json:"close_interval"`
	SweepInterval     int    `gluamapper:"sweep_interval" json:"sweep_interval"`
	LifetimeThreshold uint64 `gluamapper:"lifetime_threshold" json:"lifetime_threshold"`
	LifetimeBump      uint64 `gluamapper:"lifetime_bump" json:"lifetime_bump"`
}

// globals for background process
type ledgerData struct {
	sync.RWMutex

	log *logger.L

	lifetime Lifetime

	background *background.T

	initialised bool
}

// global data
var globalData ledgerData

// Initialise - start the ledger clock and lifetime watcher
func Initialise(configuration *Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	globalData.lifetime = configuration.Lifetime()

	closeInterval := time.Duration(configuration.CloseInterval) * time.Second
	if closeInterval <= 0 {
		closeInterval = defaultCloseInterval * time.Second
	}
	sweepInterval := time.Duration(configuration.SweepInterval) * time.Second
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval * time.Second
	}

	globalData.log.Infof("close interval: %s  sweep interval: %s", closeInterval, sweepInterval)
	globalData.log.Infof("lifetime threshold: %d  bump: %d", globalData.lifetime.Threshold, globalData.lifetime.Bump)
	globalData.log.Infof("current ledger: %d", CurrentSequence())

	globalData.initialised = true

	processes := background.Processes{
		&clock{interval: closeInterval},
		&watcher{interval: sweepInterval},
	}
	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop the background processes
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Lifetime - extension policy from configuration, zero values take the default
func (configuration *Configuration) Lifetime() Lifetime {
	l := DefaultLifetime
	if configuration.LifetimeThreshold > 0 {
		l.Threshold = configuration.LifetimeThreshold
	}
	if configuration.LifetimeBump > 0 {
		l.Bump = configuration.LifetimeBump
	}
	if l.Bump < l.Threshold {
		l.Bump = l.Threshold
	}
	return l
}
