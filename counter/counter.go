// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - connection gauge with a high-water mark
package counter

import (
	"sync/atomic"
)

// Counter - number of open items and the most ever open at once
type Counter struct {
	current uint64
	peak    uint64
}

// Increment - add 1, returns new value
func (c *Counter) Increment() uint64 {
	n := atomic.AddUint64(&c.current, 1)
	for {
		peak := atomic.LoadUint64(&c.peak)
		if n <= peak || atomic.CompareAndSwapUint64(&c.peak, peak, n) {
			return n
		}
	}
}

// Decrement - subtract 1, returns new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64(&c.current, ^uint64(0))
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64(&c.current)
}

// Peak - highest value reached
func (c *Counter) Peak() uint64 {
	return atomic.LoadUint64(&c.peak)
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
