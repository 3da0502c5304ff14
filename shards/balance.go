// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shards

import (
	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/storage"
)

func readBalance(r reader, a *account.Account) uint64 {
	return readN(r, storage.Pool.Balance, a.Bytes())
}

func (b *Batch) receiveBalance(to *account.Account, amount uint64) error {
	balance := readBalance(b.trx, to)
	if balance+amount < balance {
		return fault.InvalidCount
	}
	b.trx.PutN(storage.Pool.Balance, to.Bytes(), balance+amount)
	return nil
}

func (b *Batch) spendBalance(from *account.Account, amount uint64) error {
	balance := readBalance(b.trx, from)
	if amount > balance {
		return fault.InsufficientBalance
	}
	if balance == amount {
		b.trx.Delete(storage.Pool.Balance, from.Bytes())
	} else {
		b.trx.PutN(storage.Pool.Balance, from.Bytes(), balance-amount)
	}
	return nil
}

// moveBalance - debit then credit
func (b *Batch) moveBalance(from *account.Account, to *account.Account, amount uint64) error {
	if err := b.spendBalance(from, amount); nil != err {
		return err
	}
	return b.receiveBalance(to, amount)
}
