// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shards

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/authority"
	"github.com/bewd-social/shardd/ledger"
	"github.com/bewd-social/shardd/messagebus"
	"github.com/bewd-social/shardd/storage"
)

// Contract - the externally callable shard operations
type Contract struct {
	sync.RWMutex
	log      *logger.L
	lifetime ledger.Lifetime
	bus      *messagebus.BroadcastQueue
}

// Batch - contract operations sharing one storage batch
type Batch struct {
	contract *Contract
	trx      storage.Transaction
	current  uint64
	lifetime ledger.Lifetime
	events   []Event
}

// New - create the contract; bus may be nil to discard events
func New(log *logger.L, lifetime ledger.Lifetime, bus *messagebus.BroadcastQueue) *Contract {
	return &Contract{
		log:      log,
		lifetime: lifetime,
		bus:      bus,
	}
}

// Lifetime - current record extension policy
func (c *Contract) Lifetime() ledger.Lifetime {
	c.RLock()
	defer c.RUnlock()
	return c.lifetime
}

// SetLifetime - replace the extension policy used by later batches
func (c *Contract) SetLifetime(lifetime ledger.Lifetime) {
	c.Lock()
	c.lifetime = lifetime
	c.Unlock()
	c.log.Infof("lifetime threshold: %d  bump: %d", lifetime.Threshold, lifetime.Bump)
}

// Update - run f in a single batch
//
// the batch commits only if f returns nil; events emitted by f are
// released after the commit
func (c *Contract) Update(f func(b *Batch) error) error {
	var events []Event
	lifetime := c.Lifetime()
	err := storage.Atomically(func(trx storage.Transaction) error {
		b := &Batch{
			contract: c,
			trx:      trx,
			current:  ledger.Sequence(trx),
			lifetime: lifetime,
		}
		if err := f(b); nil != err {
			return err
		}
		lifetime.ExtendInstance(trx)
		events = b.events
		return nil
	})
	if nil != err {
		return err
	}
	c.release(events)
	return nil
}

// Transaction - the underlying storage batch
func (b *Batch) Transaction() storage.Transaction {
	return b.trx
}

// Ledger - the ledger sequence the batch runs at
func (b *Batch) Ledger() uint64 {
	return b.current
}

func (b *Batch) extendPost(postID string) {
	b.lifetime.Extend(b.trx, ledger.Post, []byte(postID))
}

func (b *Batch) extendAccounts(accounts ...*account.Account) {
	for _, a := range accounts {
		b.lifetime.Extend(b.trx, ledger.Account, a.Bytes())
	}
}

// InitializePost - issue all shards of a new post to admin
func (c *Contract) InitializePost(auth authority.Authoriser, admin *account.Account, postID string, metadata Metadata, threshold uint64, totalShards uint64, isRWA bool) (uint64, error) {
	base := uint64(0)
	err := c.Update(func(b *Batch) error {
		var err error
		base, err = b.InitializePost(auth, admin, postID, metadata, threshold, totalShards, isRWA)
		return err
	})
	if nil != err {
		c.log.Warnf("initialise post: %q  error: %s", postID, err)
		return 0, err
	}
	c.log.Infof("initialise post: %q  admin: %s  shards: %d  base: %d", postID, admin, totalShards, base)
	return base, nil
}

// BuildPost - record one build; true if this build triggered fractionalisation
func (c *Contract) BuildPost(auth authority.Authoriser, postID string, builder *account.Account) (*PostConfig, bool, error) {
	var config *PostConfig
	signalled := false
	err := c.Update(func(b *Batch) error {
		var err error
		config, signalled, err = b.BuildPost(auth, postID, builder)
		return err
	})
	if nil != err {
		c.log.Warnf("build post: %q  error: %s", postID, err)
		return nil, false, err
	}
	c.log.Debugf("build post: %q  builder: %s  count: %d", postID, builder, config.BuildCount)
	if signalled {
		c.log.Infof("fractionalize: %q  builder: %s  count: %d  threshold: %d", postID, builder, config.BuildCount, config.Threshold)
	}
	return config, signalled, nil
}

// TransferShard - move one shard of a post between accounts
func (c *Contract) TransferShard(auth authority.Authoriser, from *account.Account, to *account.Account, postID string, local uint64) error {
	err := c.Update(func(b *Batch) error {
		return b.TransferShard(auth, from, to, postID, local)
	})
	if nil != err {
		c.log.Warnf("transfer shard: %q[%d]  error: %s", postID, local, err)
		return err
	}
	c.log.Infof("transfer shard: %q[%d]  from: %s  to: %s", postID, local, from, to)
	return nil
}

// Approve - set the allowance of spender over from's balance
func (c *Contract) Approve(auth authority.Authoriser, from *account.Account, spender *account.Account, amount int64, expirationLedger uint64) error {
	err := c.Update(func(b *Batch) error {
		return b.Approve(auth, from, spender, amount, expirationLedger)
	})
	if nil != err {
		c.log.Warnf("approve: from: %s  spender: %s  error: %s", from, spender, err)
		return err
	}
	c.log.Infof("approve: from: %s  spender: %s  amount: %d  expiration: %d", from, spender, amount, expirationLedger)
	return nil
}

// Transfer - move the shard at a global index and one balance unit
//
// index is a global shard index, not an amount
func (c *Contract) Transfer(auth authority.Authoriser, from *account.Account, to *account.Account, index uint64) error {
	err := c.Update(func(b *Batch) error {
		return b.Transfer(auth, from, to, index)
	})
	if nil != err {
		c.log.Warnf("transfer: index: %d  error: %s", index, err)
		return err
	}
	c.log.Infof("transfer: index: %d  from: %s  to: %s", index, from, to)
	return nil
}

// TransferFrom - spender moves balance from one account to another
func (c *Contract) TransferFrom(auth authority.Authoriser, spender *account.Account, from *account.Account, to *account.Account, amount int64) error {
	err := c.Update(func(b *Batch) error {
		return b.TransferFrom(auth, spender, from, to, amount)
	})
	if nil != err {
		c.log.Warnf("transfer from: spender: %s  from: %s  error: %s", spender, from, err)
		return err
	}
	c.log.Infof("transfer from: spender: %s  from: %s  to: %s  amount: %d", spender, from, to, amount)
	return nil
}

// Burn - destroy balance units
func (c *Contract) Burn(auth authority.Authoriser, from *account.Account, amount int64) error {
	err := c.Update(func(b *Batch) error {
		return b.Burn(auth, from, amount)
	})
	if nil != err {
		c.log.Warnf("burn: from: %s  error: %s", from, err)
		return err
	}
	c.log.Infof("burn: from: %s  amount: %d", from, amount)
	return nil
}

// BurnFrom - spender destroys balance units of another account
func (c *Contract) BurnFrom(auth authority.Authoriser, spender *account.Account, from *account.Account, amount int64) error {
	err := c.Update(func(b *Batch) error {
		return b.BurnFrom(auth, spender, from, amount)
	})
	if nil != err {
		c.log.Warnf("burn from: spender: %s  from: %s  error: %s", spender, from, err)
		return err
	}
	c.log.Infof("burn from: spender: %s  from: %s  amount: %d", spender, from, amount)
	return nil
}
