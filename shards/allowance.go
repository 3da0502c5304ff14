// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shards

import (
	"encoding/binary"

	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/storage"
)

// Allowance - delegated spending permission
type Allowance struct {
	Amount           int64  `json:"amount"`
	ExpirationLedger uint64 `json:"expirationLedger"`
}

// amount(N) ++ expiration ledger(N)
func (a *Allowance) pack() []byte {
	buffer := make([]byte, 16)
	binary.BigEndian.PutUint64(buffer[:8], uint64(a.Amount))
	binary.BigEndian.PutUint64(buffer[8:], a.ExpirationLedger)
	return buffer
}

// readAllowance - an expired allowance keeps its expiration but has no amount
func readAllowance(r reader, from *account.Account, spender *account.Account, current uint64) (*Allowance, error) {
	buffer := r.Get(storage.Pool.Allowance, allowanceKey(from, spender))
	if nil == buffer {
		return &Allowance{}, nil
	}
	if 16 != len(buffer) {
		return nil, fault.TruncatedRecord
	}
	a := &Allowance{
		Amount:           int64(binary.BigEndian.Uint64(buffer[:8])),
		ExpirationLedger: binary.BigEndian.Uint64(buffer[8:]),
	}
	if a.ExpirationLedger < current {
		a.Amount = 0
	}
	return a, nil
}

func (b *Batch) writeAllowance(from *account.Account, spender *account.Account, amount int64, expiration uint64) error {
	if amount < 0 {
		return fault.NegativeAmount
	}
	if amount > 0 && expiration < b.current {
		return fault.InvalidExpiration
	}
	a := Allowance{
		Amount:           amount,
		ExpirationLedger: expiration,
	}
	b.trx.Put(storage.Pool.Allowance, allowanceKey(from, spender), a.pack())
	return nil
}

// spendAllowance - the remaining unexpired amount is a hard floor
func (b *Batch) spendAllowance(from *account.Account, spender *account.Account, amount int64) error {
	if amount < 0 {
		return fault.NegativeAmount
	}
	a, err := readAllowance(b.trx, from, spender, b.current)
	if nil != err {
		return err
	}
	if amount > a.Amount {
		return fault.InsufficientAllowance
	}
	if 0 == amount {
		return nil
	}
	a.Amount -= amount
	b.trx.Put(storage.Pool.Allowance, allowanceKey(from, spender), a.pack())
	return nil
}
