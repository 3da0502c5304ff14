// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shards

import (
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/storage"
)

// State - engagement state of a post
type State int

// engagement states
const (
	Accumulating State = iota
	ThresholdReached
)

func (s State) String() string {
	switch s {
	case Accumulating:
		return "accumulating"
	case ThresholdReached:
		return "threshold-reached"
	default:
		return "unknown"
	}
}

// MarshalText - state name for JSON
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - state from its name
func (s *State) UnmarshalText(text []byte) error {
	for _, state := range []State{Accumulating, ThresholdReached} {
		if state.String() == string(text) {
			*s = state
			return nil
		}
	}
	return fault.InvalidItem
}

// flag bits
const (
	flagRWA       = 0x01
	flagSignalled = 0x02
)

// PostConfig - engagement counter and threshold of a post
type PostConfig struct {
	Threshold  uint64 `json:"threshold"`
	BuildCount uint64 `json:"buildCount"`
	IsRWA      bool   `json:"isRwa"`
	Signalled  bool   `json:"signalled"`
}

// State - current engagement state
func (c *PostConfig) State() State {
	if c.BuildCount >= c.Threshold {
		return ThresholdReached
	}
	return Accumulating
}

// build - count one build, true exactly once: on the build that finds
// the threshold reached and the signal not yet sent
func (c *PostConfig) build() bool {
	c.BuildCount += 1
	if c.Signalled || c.BuildCount < c.Threshold {
		return false
	}
	c.Signalled = true
	return true
}

// threshold(N) ++ build count(N) ++ flags(1)
func (c *PostConfig) pack() []byte {
	flags := byte(0)
	if c.IsRWA {
		flags |= flagRWA
	}
	if c.Signalled {
		flags |= flagSignalled
	}
	buffer := append(storage.EncodeN(c.Threshold), storage.EncodeN(c.BuildCount)...)
	return append(buffer, flags)
}

func readPostConfig(r reader, postID string) (*PostConfig, error) {
	buffer := r.Get(storage.Pool.PostConfig, postKey(postID))
	if nil == buffer {
		return nil, fault.MissingRecord
	}
	if 17 != len(buffer) {
		return nil, fault.TruncatedRecord
	}
	return &PostConfig{
		Threshold:  storage.DecodeN(buffer[:8]),
		BuildCount: storage.DecodeN(buffer[8:16]),
		IsRWA:      0 != buffer[16]&flagRWA,
		Signalled:  0 != buffer[16]&flagSignalled,
	}, nil
}
