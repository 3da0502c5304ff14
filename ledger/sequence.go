// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bewd-social/shardd/storage"
)

var sequenceKey = []byte("ledger")

// Sequence - current ledger as seen inside a batch
func Sequence(trx storage.Transaction) uint64 {
	n, _ := trx.GetN(storage.Pool.Globals, sequenceKey)
	return n
}

// CurrentSequence - last committed ledger
func CurrentSequence() uint64 {
	n, _ := storage.Pool.Globals.GetN(sequenceKey)
	return n
}

// Advance - close the current ledger and return the new sequence
func Advance() (uint64, error) {
	n := uint64(0)
	err := storage.Atomically(func(trx storage.Transaction) error {
		n = Sequence(trx) + 1
		trx.PutN(storage.Pool.Globals, sequenceKey, n)
		return nil
	})
	return n, err
}
