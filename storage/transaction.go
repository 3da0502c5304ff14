// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/fault"
)

// Transaction - a batch of writes applied all together or not at all
//
// reads through a transaction see its own pending writes
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	GetNB(*PoolHandle, []byte) (uint64, []byte)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex // held for the duration of a batch
	state      sync.Mutex
	inUse      bool
	readOnly   bool
	access     Access
}

func newTransaction(access Access, readOnly bool) *transaction {
	return &transaction{
		access:   access,
		readOnly: readOnly,
	}
}

// Begin - wait for exclusive use of the batch
func (t *transaction) Begin() error {
	if t.readOnly {
		return fault.DatabaseIsNotSet
	}
	t.Lock()
	t.state.Lock()
	t.inUse = true
	t.state.Unlock()
	return nil
}

func (t *transaction) active() bool {
	t.state.Lock()
	defer t.state.Unlock()
	return t.inUse
}

func (t *transaction) finish() {
	t.state.Lock()
	t.inUse = false
	t.state.Unlock()
	t.Unlock()
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	if !t.active() {
		logger.Panicf("transaction.Put outside batch for: %x", key)
	}
	t.access.Put(p.prefixKey(key), value)
}

func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	t.Put(p, key, EncodeN(value))
}

func (t *transaction) Delete(p *PoolHandle, key []byte) {
	if !t.active() {
		logger.Panicf("transaction.Delete outside batch for: %x", key)
	}
	t.access.Delete(p.prefixKey(key))
}

func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	prefixedKey := p.prefixKey(key)
	if value, found := t.access.Pending(prefixedKey); found {
		return value
	}
	value, err := t.access.Get(prefixedKey)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

func (t *transaction) GetNB(p *PoolHandle, key []byte) (uint64, []byte) {
	return decodeNB(key, t.Get(p, key))
}

func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	return nil != t.Get(p, key)
}

// Commit - write all pending changes and release the batch
func (t *transaction) Commit() error {
	if !t.active() {
		return fault.TransactionNotStarted
	}
	defer t.finish()
	return t.access.Commit()
}

// Abort - discard all pending changes and release the batch
func (t *transaction) Abort() {
	if !t.active() {
		return
	}
	t.access.Abort()
	t.finish()
}
