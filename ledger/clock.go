// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// maximum expired records reported per sweep
const reportLimit = 20

// clock - close one ledger every interval
type clock struct {
	interval time.Duration
}

func (c *clock) Run(args interface{}, shutdown <-chan struct{}) {
	log := args.(*logger.L)

	log.Info("clock: starting…")

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			n, err := Advance()
			if nil != err {
				log.Errorf("clock: advance error: %s", err)
				continue loop
			}
			log.Tracef("clock: ledger: %d", n)
		}
	}
	log.Info("clock: stopped")
}

// watcher - report records whose lifetime has passed
type watcher struct {
	interval time.Duration
}

func (w *watcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := args.(*logger.L)

	log.Info("watcher: starting…")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			sweep(log)
		}
	}
	log.Info("watcher: stopped")
}

func sweep(log *logger.L) int {
	current := CurrentSequence()
	expired, err := ExpiredRecords(current)
	if nil != err {
		log.Errorf("watcher: scan error: %s", err)
		return 0
	}
	for i, e := range expired {
		if i >= reportLimit {
			log.Warnf("watcher: %d more expired records", len(expired)-reportLimit)
			break
		}
		log.Warnf("watcher: expired %s: %x  live until: %d  current: %d", e.Kind, e.Key, e.LiveUntil, current)
	}
	log.Debugf("watcher: ledger: %d  expired records: %d", current, len(expired))
	return len(expired)
}
