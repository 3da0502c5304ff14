// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shards

import (
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/storage"
	"github.com/bewd-social/shardd/util"
)

// MaximumDecimal - largest display precision
const MaximumDecimal = 18

// Metadata - display metadata of a post's shard collection
type Metadata struct {
	Decimal uint32 `json:"decimal"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// decimal(1) ++ packed name ++ packed symbol
func (m *Metadata) pack() []byte {
	buffer := []byte{byte(m.Decimal)}
	buffer = util.PackBytes(buffer, []byte(m.Name))
	return util.PackBytes(buffer, []byte(m.Symbol))
}

func unpackMetadata(buffer []byte) (*Metadata, error) {
	if len(buffer) < 1 {
		return nil, fault.TruncatedRecord
	}
	m := &Metadata{
		Decimal: uint32(buffer[0]),
	}
	n := 1

	name, count := util.UnpackBytes(buffer[n:])
	if 0 == count {
		return nil, fault.TruncatedRecord
	}
	n += count

	symbol, count := util.UnpackBytes(buffer[n:])
	if 0 == count {
		return nil, fault.TruncatedRecord
	}

	m.Name = string(name)
	m.Symbol = string(symbol)
	return m, nil
}

func readMetadata(r reader, postID string) (*Metadata, error) {
	buffer := r.Get(storage.Pool.Metadata, postKey(postID))
	if nil == buffer {
		return nil, fault.MissingRecord
	}
	return unpackMetadata(buffer)
}
